package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/krisalay/ttl-cache/config"
)

// ConfigOptions are command line options that can be set for config.Config.
// Flags given explicitly win over the config file.
type ConfigOptions struct {
	// ConfigFilePath is the path to a config file.
	ConfigFilePath string

	TTL                time.Duration
	Shards             int
	LogLevel           string
	MetricsBindAddress string

	config *config.Config
}

// AddFlags adds the config flags to fs.
func (o *ConfigOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFilePath, "config-file", "", "path to the YAML configuration file")
	fs.DurationVar(&o.TTL, "ttl", config.DefaultTTL, "lifetime of every cache entry")
	fs.IntVar(&o.Shards, "shards", 1, "number of cache shards; 1 uses a single-owner cache")
	fs.StringVar(&o.LogLevel, "log-level", config.DefaultLogLevel, "log level: error, info or debug")
	fs.StringVar(&o.MetricsBindAddress, "metrics-bind-address", "", "serve Prometheus metrics on this address while running")
}

// Complete loads the config file (if any) and applies the flags that were set.
func (o *ConfigOptions) Complete(fs *pflag.FlagSet) error {
	cfg := config.Default()
	if len(o.ConfigFilePath) > 0 {
		var err error
		if cfg, err = config.LoadFromFile(o.ConfigFilePath); err != nil {
			return err
		}
	}

	if fs.Changed("ttl") {
		cfg.TTL = o.TTL
	}
	if fs.Changed("shards") {
		cfg.Shards = o.Shards
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if fs.Changed("metrics-bind-address") {
		cfg.Metrics.BindAddress = o.MetricsBindAddress
		cfg.Metrics.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "command line")
	}

	o.config = cfg
	return nil
}

// Completed returns the completed Config. Only call this if `Complete` was successful.
func (o *ConfigOptions) Completed() *config.Config {
	return o.config
}
