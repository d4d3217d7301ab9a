package app

import (
	"github.com/spf13/cobra"

	"github.com/krisalay/ttl-cache/config"
)

const Name = "ttlcache"

// NewRootCommand creates the ttlcache command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &ConfigOptions{}

	cmd := &cobra.Command{
		Use:          Name,
		Short:        "A key/value cache whose entries expire after a fixed TTL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Complete(cmd.Flags()); err != nil {
				return err
			}
			config.ConfigureLogger(opts.Completed().LogLevel)
			return nil
		},
	}
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newDemoCommand(opts),
		newBenchCommand(opts),
		newVersionCommand(),
	)
	return cmd
}
