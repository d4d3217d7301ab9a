package config

import (
	"fmt"
	"time"
)

const (
	DefaultTTL       = 10 * time.Second
	DefaultLogLevel  = "info"
	DefaultNamespace = "ttlcache"
)

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		TTL:      DefaultTTL,
		Shards:   1,
		LogLevel: DefaultLogLevel,
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Demo: DemoConfig{
			Entries: DefaultEntries(),
		},
	}
}

// DefaultEntries returns k1..k5 mapped to v1..v5.
func DefaultEntries() []Entry {
	entries := make([]Entry, 0, 5)
	for i := 1; i <= 5; i++ {
		entries = append(entries, Entry{
			Key:   fmt.Sprintf("k%d", i),
			Value: fmt.Sprintf("v%d", i),
		})
	}
	return entries
}
