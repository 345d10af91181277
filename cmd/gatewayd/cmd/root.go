package cmd

import (
	"github.com/spf13/cobra"

	"lzgateway/app"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           app.Name + "d",
		Short:         "Cross-chain gateway utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newOptionsCmd(),
		newPayloadCmd(),
		newConfigCmd(),
	)
	return rootCmd
}
