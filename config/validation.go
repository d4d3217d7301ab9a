package config

import (
	"github.com/pkg/errors"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.Wrap(ErrInvalid, "config is nil")
	}

	if c.TTL <= 0 {
		return errors.Wrapf(ErrInvalid, "ttl must be positive, got %s", c.TTL)
	}

	if c.Shards < 1 {
		return errors.Wrapf(ErrInvalid, "shards must be at least 1, got %d", c.Shards)
	}

	switch c.LogLevel {
	case "error", "info", "debug":
	default:
		return errors.Wrapf(ErrInvalid, "unknown log level %q", c.LogLevel)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return errors.Wrap(ErrInvalid, "metrics.namespace is required when metrics are enabled")
	}
	if !c.Metrics.Enabled && c.Metrics.BindAddress != "" {
		return errors.Wrap(ErrInvalid, "metrics.bindAddress is set but metrics are disabled")
	}

	seen := make(map[string]struct{}, len(c.Demo.Entries))
	for i, e := range c.Demo.Entries {
		if e.Key == "" {
			return errors.Wrapf(ErrInvalid, "demo.entries[%d]: key is required", i)
		}
		if _, dup := seen[e.Key]; dup {
			return errors.Wrapf(ErrInvalid, "demo.entries[%d]: duplicate key %q", i, e.Key)
		}
		seen[e.Key] = struct{}{}
	}

	return nil
}
