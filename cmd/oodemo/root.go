package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krew-solutions/ascetic-oo-go/asceticoo/oo"
)

func newRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "oodemo",
		Short:         "Demonstrates the ascetic-oo composition helpers and event notifier",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error (defaults OODEMO_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console|json (defaults OODEMO_LOG_FORMAT or console)")

	version := &cobra.Command{Use: "version", Short: "Print the library version", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), oo.Version)
		return err
	}}
	root.AddCommand(version, newInheritCmd(), newNotifyCmd(cfg))
	return root
}
