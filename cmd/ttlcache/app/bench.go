package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/krisalay/ttl-cache/config"
	"github.com/krisalay/ttl-cache/types"
)

type benchOptions struct {
	entries int
	workers int
}

func newBenchCommand(opts *ConfigOptions) *cobra.Command {
	bo := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure insert throughput and how long the entries take to purge",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts.Completed(), bo)
		},
	}

	cmd.Flags().IntVar(&bo.entries, "entries", 100000, "entries inserted per worker")
	cmd.Flags().IntVar(&bo.workers, "workers", 1, "concurrent inserting workers; more than one requires --shards > 1")
	return cmd
}

func runBench(cmd *cobra.Command, cfg *config.Config, bo *benchOptions) error {
	if bo.workers > 1 && cfg.Shards < 2 {
		return fmt.Errorf("%d workers need a sharded cache, set --shards", bo.workers)
	}

	var evicted atomic.Int64
	counter := types.NotifierFunc(func(context.Context, *types.CacheEntry) error {
		evicted.Add(1)
		return nil
	})

	c, err := newCache(cfg, counter, prometheus.NewRegistry(), config.NewLogr().WithName("cache"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "CONFIG")
	fmt.Fprintln(out, "---------------------------------")
	fmt.Fprintln(out, "Shards       :", cfg.Shards)
	fmt.Fprintln(out, "TTL          :", cfg.TTL)
	fmt.Fprintln(out, "Workers      :", bo.workers)
	fmt.Fprintln(out, "Entries/Wrk  :", bo.entries)
	fmt.Fprintln(out, "---------------------------------")

	start := time.Now()

	var g errgroup.Group
	for w := 0; w < bo.workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < bo.entries; i++ {
				c.Insert(fmt.Sprintf("w%d-key-%d", w, i), i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	inserted := time.Since(start)

	if err := c.Purge(cmd.Context()); err != nil {
		return err
	}
	purged := time.Since(start)

	total := bo.workers * bo.entries
	fmt.Fprintln(out, "\n================ RESULTS =================")
	fmt.Fprintf(out, "Inserted         : %d\n", total)
	fmt.Fprintf(out, "Insert Time      : %v\n", inserted)
	fmt.Fprintf(out, "Insert Rate      : %.2f ops/sec\n", float64(total)/inserted.Seconds())
	fmt.Fprintf(out, "Evicted          : %d\n", evicted.Load())
	fmt.Fprintf(out, "Until Empty      : %v\n", purged)
	fmt.Fprintln(out, "==========================================")
	return nil
}
