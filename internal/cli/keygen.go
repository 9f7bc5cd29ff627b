package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/smbls/bls"
	"github.com/smartcontractkit/smbls/keyfile"
	"github.com/spf13/cobra"
)

func newKeygenCommand(ctx *rootContext) *cobra.Command {
	var (
		seed           string
		passphraseFile string
		force          bool
	)

	cmd := cobra.Command{
		Use:   "keygen",
		Short: "Generate a new key pair and write it to the key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := ctx.schema()
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(ctx.conf.KeyFile); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", ctx.conf.KeyFile)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			var sk bls.PrivateKey
			if seed != "" {
				ikm, err := hexutil.Decode(seed)
				if err != nil {
					return fmt.Errorf("invalid seed: %w", err)
				}
				sk, err = bls.PrivateKeyFromSeed(schema, ikm)
				if err != nil {
					return err
				}
			} else {
				sk, err = bls.GeneratePrivateKey(schema, nil)
				if err != nil {
					return err
				}
			}
			kp, err := bls.KeyPairFromPrivateKey(sk)
			if err != nil {
				return err
			}

			passphrase, err := readPassphrase(passphraseFile)
			if err != nil {
				return err
			}
			f, err := keyfile.New(kp, passphrase)
			if err != nil {
				return err
			}
			if err := keyfile.Write(ctx.conf.KeyFile, f, 0600); err != nil {
				return err
			}

			ctx.logger.WithFields(logrus.Fields{
				"schema":    schema,
				"file":      ctx.conf.KeyFile,
				"encrypted": f.IsEncrypted(),
			}).Info("key pair generated")
			fmt.Fprintln(cmd.OutOrStdout(), kp.PublicKey())
			return nil
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "Derive the key deterministically from this hex encoded seed (at least 32 bytes)")
	cmd.Flags().StringVarP(&passphraseFile, "passphrase-file", "p", "", "Encrypt the private key with the passphrase read from this file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing key file")
	_ = cmd.MarkFlagFilename("passphrase-file")
	return &cmd
}

func newPubkeyCommand(ctx *rootContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key stored in the key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := keyfile.Read(ctx.conf.KeyFile)
			if err != nil {
				return err
			}
			pk, err := f.Public()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pk)
			return nil
		},
	}
}
