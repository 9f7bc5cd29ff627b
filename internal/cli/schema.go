package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/smbls/bls"
	"github.com/spf13/cobra"
)

func newSchemaCommand(ctx *rootContext) *cobra.Command {
	var list bool

	cmd := cobra.Command{
		Use:   "schema [encoded key or signature]",
		Short: "Print the signature schema of the configuration or of an encoded key or signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var schemas []bls.SignatureSchema
			switch {
			case list:
				schemas = bls.SupportedSignatureSchemas()
			case len(args) == 1:
				data, err := hexutil.Decode(args[0])
				if err != nil {
					return err
				}
				schema, err := bls.SignatureSchemaFromBytes(data)
				if err != nil {
					return err
				}
				schemas = append(schemas, schema)
			default:
				schema, err := ctx.schema()
				if err != nil {
					return err
				}
				schemas = append(schemas, schema)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 4, ' ', 0)
			fmt.Fprintln(w, "Schema Byte\tCurve\tGroup Assignment\tPrivate Key\tPublic Key\tSignature")
			for _, s := range schemas {
				b, err := s.ToByte()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "0x%02x\t%s\t%s\t%d\t%d\t%d\n",
					b, s.Curve(), s.GroupAssignment(), s.PrivateKeySize(), s.PublicKeySize(), s.SignatureSize())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "List all supported schemas")
	return &cmd
}
