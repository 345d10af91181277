package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"lzgateway/x/oapp/types"
)

func newPayloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Encode and decode gateway message payloads",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode [text]",
			Short: "ABI encode text as a gateway payload",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				bz, err := types.EncodePayload(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(bz))
				return err
			},
		},
		&cobra.Command{
			Use:   "decode [hex]",
			Short: "Decode a gateway payload back to text",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				bz, err := hexutil.Decode(args[0])
				if err != nil {
					return err
				}
				text, err := types.DecodePayload(bz)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			},
		},
	)
	return cmd
}
