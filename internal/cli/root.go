// Package cli implements the blskey command line tool.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/smbls/bls"
	"github.com/smartcontractkit/smbls/keyfile"
	"github.com/smartcontractkit/smbls/signer"
	"github.com/spf13/cobra"
)

type rootContext struct {
	conf     Config
	logger   *logrus.Logger
	registry *prometheus.Registry
	metrics  *signer.Metrics
}

func NewRootCommand() *cobra.Command {
	ctx := &rootContext{}
	ctx.conf.Default()

	cmd := cobra.Command{
		Use:           "blskey [options]",
		Short:         "BLS key management and signing tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.logMetrics()
		},
	}
	ctx.conf.RegisterFlags(cmd.PersistentFlags(), &cmd)

	cmd.AddCommand(newSchemaCommand(ctx))
	cmd.AddCommand(newKeygenCommand(ctx))
	cmd.AddCommand(newPubkeyCommand(ctx))
	cmd.AddCommand(newSignCommand(ctx))
	cmd.AddCommand(newVerifyCommand(ctx))
	cmd.AddCommand(newAggregateCommand(ctx))

	return &cmd
}

func (r *rootContext) setup(cmd *cobra.Command) error {
	if err := r.conf.FromCmdline(cmd.Flags()); err != nil {
		return err
	}

	r.logger = logrus.New()
	r.logger.SetOutput(cmd.ErrOrStderr())
	r.logger.SetLevel(r.conf.LogLevel)

	r.registry = prometheus.NewRegistry()
	metrics, err := signer.NewMetrics(r.registry)
	if err != nil {
		return err
	}
	r.metrics = metrics
	return nil
}

func (r *rootContext) schema() (bls.SignatureSchema, error) {
	return r.conf.Schema()
}

func (r *rootContext) newSigner(passphraseFile string) (*signer.Signer, error) {
	f, err := keyfile.Read(r.conf.KeyFile)
	if err != nil {
		return nil, err
	}
	passphrase, err := readPassphrase(passphraseFile)
	if err != nil {
		return nil, err
	}
	kp, err := f.KeyPair(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.conf.KeyFile, err)
	}
	return signer.New(kp,
		signer.WithLogger(signer.NewLogrusLogger(r.logger)),
		signer.WithMetrics(r.metrics),
	)
}

func (r *rootContext) newVerifier() *signer.Verifier {
	return signer.NewVerifier(
		signer.WithLogger(signer.NewLogrusLogger(r.logger)),
		signer.WithMetrics(r.metrics),
	)
}

// logMetrics logs the values of all collected metrics at debug level.
func (r *rootContext) logMetrics() {
	if r.registry == nil {
		return
	}
	families, err := r.registry.Gather()
	if err != nil {
		r.logger.WithError(err).Warn("failed to gather metrics")
		return
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			fields := logrus.Fields{"metric": family.GetName()}
			for _, label := range m.GetLabel() {
				fields[label.GetName()] = label.GetValue()
			}
			r.logger.WithFields(fields).Debug(m.GetCounter().GetValue())
		}
	}
}

func readPassphrase(name string) ([]byte, error) {
	if name == "" {
		return nil, nil
	}
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(string(buf), "\r\n")), nil
}

// readMessage returns the message argument, decoded from hex if isHex is set.
func readMessage(args []string, isHex bool) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one message argument, got %d", len(args))
	}
	if isHex {
		return hexutil.Decode(args[0])
	}
	return []byte(args[0]), nil
}
