package cli

import (
	"fmt"

	"github.com/smartcontractkit/smbls/bls"
	"github.com/spf13/cobra"
)

func newAggregateCommand(ctx *rootContext) *cobra.Command {
	cmd := cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate hex encoded public keys or signatures",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "public-keys HEX HEX...",
		Short: "Aggregate two or more public keys",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]bls.PublicKey, len(args))
			for i, arg := range args {
				if err := keys[i].UnmarshalText([]byte(arg)); err != nil {
					return fmt.Errorf("public key %d: %w", i, err)
				}
			}
			pk, err := ctx.newVerifier().AggregatePublicKeys(keys)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pk)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "signatures HEX HEX...",
		Short: "Aggregate two or more signatures",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigs := make([]bls.Signature, len(args))
			for i, arg := range args {
				if err := sigs[i].UnmarshalText([]byte(arg)); err != nil {
					return fmt.Errorf("signature %d: %w", i, err)
				}
			}
			sig, err := ctx.newVerifier().AggregateSignatures(sigs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	})

	return &cmd
}
