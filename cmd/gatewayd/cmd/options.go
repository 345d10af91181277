package cmd

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lzgateway/x/oapp/types"
)

const (
	flagGas  = "gas"
	flagDrop = "drop"
)

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Encode and decode executor delivery options",
	}
	cmd.AddCommand(newOptionsEncodeCmd(), newOptionsDecodeCmd())
	return cmd
}

func newOptionsEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode",
		Short:   "Print type 3 options for a remote gas limit and native drop",
		Args:    cobra.NoArgs,
		Example: "$ gatewayd options encode --gas 200000 --drop 1000",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gas, err := cmd.Flags().GetUint64(flagGas)
			if err != nil {
				return err
			}
			dropRaw, err := cmd.Flags().GetString(flagDrop)
			if err != nil {
				return err
			}
			drop, ok := sdkmath.NewIntFromString(dropRaw)
			if !ok {
				return fmt.Errorf("invalid --%s %q", flagDrop, dropRaw)
			}
			opts := types.NewDeliveryOptions(gas, drop)
			if err := opts.Validate(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), opts.Hex())
			return err
		},
	}
	addDeliveryFlags(cmd.Flags())
	return cmd
}

func addDeliveryFlags(fs *pflag.FlagSet) {
	fs.Uint64(flagGas, types.DefaultCallbackGasLimit, "gas limit for lzReceive on the destination")
	fs.String(flagDrop, "0", "native amount delivered to the receiver")
}

func newOptionsDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode type 3 options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := hexutil.Decode(args[0])
			if err != nil {
				return err
			}
			opts, err := types.ParseDeliveryOptions(bz)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "gas=%d drop=%s\n", opts.RemoteGasLimit, opts.NativeDrop)
			return err
		},
	}
}
