package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	cache "github.com/krisalay/ttl-cache"
	"github.com/krisalay/ttl-cache/api"
	"github.com/krisalay/ttl-cache/config"
	"github.com/krisalay/ttl-cache/metrics"
	"github.com/krisalay/ttl-cache/types"
)

// newCache builds the cache described by cfg. With more than one shard the
// cache is safe for concurrent use.
func newCache(cfg *config.Config, notifier types.Notifier, reg prometheus.Registerer, logger logr.Logger) (api.Cache, error) {
	opts := []cache.Option{
		cache.WithTTL(cfg.TTL),
		cache.WithNotifier(notifier),
		cache.WithLogger(logger),
	}

	if cfg.Metrics.Enabled {
		m, err := metrics.NewPrometheus(reg, cfg.Metrics.Namespace)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cache.WithMetrics(m))
	}

	if cfg.Shards > 1 {
		return cache.NewShardedCache(cfg.Shards, opts...), nil
	}
	return cache.New(opts...), nil
}

// serveMetrics exposes reg on addr until the returned stop function is called.
// An empty addr serves nothing.
func serveMetrics(addr string, reg *prometheus.Registry) (stop func()) {
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Infof("Serving metrics on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("Metrics server failed: %v", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Metrics server shutdown failed: %v", err)
		}
	}
}
