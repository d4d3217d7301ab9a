package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/krisalay/ttl-cache/config"
	"github.com/krisalay/ttl-cache/notify"
)

func newDemoCommand(opts *ConfigOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Insert the sample entries and print each key as it expires",
		Long: `Inserts the demo entries of the configuration (k1..k5 by default),
then waits until every one of them has expired. Each evicted key is printed
on its own line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := opts.Completed()
			reg := prometheus.NewRegistry()

			c, err := newCache(cfg, notify.Writer(cmd.OutOrStdout()), reg, config.NewLogr().WithName("cache"))
			if err != nil {
				return err
			}

			defer serveMetrics(cfg.Metrics.BindAddress, reg)()

			for _, e := range cfg.Demo.Entries {
				c.Insert(e.Key, e.Value)
			}
			log.Infof("Inserted %d entries with ttl %s, waiting for them to expire", c.Len(), cfg.TTL)

			if err := c.Purge(ctx); err != nil {
				return err
			}

			log.Info("All entries expired")
			return nil
		},
	}
}
