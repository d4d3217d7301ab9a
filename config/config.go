// Package config handles configuration loading and validation
package config

import "time"

// Config is the configuration of the ttlcache command.
type Config struct {
	// TTL is the lifetime of every cache entry.
	TTL time.Duration `yaml:"ttl"`
	// Shards is the number of independently locked shards. One means a plain cache.
	Shards int `yaml:"shards"`
	// LogLevel is one of error, info or debug.
	LogLevel string `yaml:"logLevel"`

	Metrics MetricsConfig `yaml:"metrics"`
	Demo    DemoConfig    `yaml:"demo"`
}

// MetricsConfig controls the Prometheus counters.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	// BindAddress serves /metrics while the command runs. Empty disables the endpoint.
	BindAddress string `yaml:"bindAddress"`
}

// DemoConfig lists the entries inserted by the demo command.
type DemoConfig struct {
	Entries []Entry `yaml:"entries"`
}

// Entry is one sample key/value pair.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}
