package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lzgateway/app/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Gateway configuration helpers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate [path]",
		Short: "Load a gateway config (plus GATEWAY_* env) and check it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", cfg)
			return err
		},
	})
	return cmd
}
