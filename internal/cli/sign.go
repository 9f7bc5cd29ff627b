package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/smbls/bls"
	"github.com/smartcontractkit/smbls/keyfile"
	"github.com/spf13/cobra"
)

func newSignCommand(ctx *rootContext) *cobra.Command {
	var (
		isHex          bool
		passphraseFile string
	)

	cmd := cobra.Command{
		Use:   "sign MESSAGE",
		Short: "Sign a message with the key from the key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(args, isHex)
			if err != nil {
				return err
			}
			s, err := ctx.newSigner(passphraseFile)
			if err != nil {
				return err
			}
			sig, err := s.Sign(msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().BoolVar(&isHex, "hex", false, "The message is 0x-prefixed hex")
	cmd.Flags().StringVarP(&passphraseFile, "passphrase-file", "p", "", "Read the key file passphrase from this file")
	_ = cmd.MarkFlagFilename("passphrase-file")
	return &cmd
}

func newVerifyCommand(ctx *rootContext) *cobra.Command {
	var (
		isHex     bool
		publicKey string
		signature string
	)

	cmd := cobra.Command{
		Use:   "verify MESSAGE",
		Short: "Verify a signature over a message",
		Long: "Verify a signature over a message. Without --public-key, the public key from the key file is used.\n" +
			"The command fails if the signature is invalid.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(args, isHex)
			if err != nil {
				return err
			}
			sigBytes, err := hexutil.Decode(signature)
			if err != nil {
				return fmt.Errorf("invalid signature: %w", err)
			}
			pk, err := ctx.verificationKey(publicKey)
			if err != nil {
				return err
			}

			valid, err := ctx.newVerifier().VerifyBytes(pk, sigBytes, msg)
			if err != nil {
				return err
			}
			if !valid {
				return fmt.Errorf("signature is invalid")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().BoolVar(&isHex, "hex", false, "The message is 0x-prefixed hex")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "Hex encoded public key")
	cmd.Flags().StringVarP(&signature, "signature", "s", "", "Hex encoded signature")
	_ = cmd.MarkFlagRequired("signature")
	return &cmd
}

func (r *rootContext) verificationKey(hex string) (bls.PublicKey, error) {
	var pk bls.PublicKey
	if hex != "" {
		if err := pk.UnmarshalText([]byte(hex)); err != nil {
			return bls.PublicKey{}, fmt.Errorf("invalid public key: %w", err)
		}
		return pk, nil
	}
	f, err := keyfile.Read(r.conf.KeyFile)
	if err != nil {
		return bls.PublicKey{}, err
	}
	return f.Public()
}
