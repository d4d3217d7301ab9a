package cache

import (
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/krisalay/ttl-cache/engine"
	"github.com/krisalay/ttl-cache/types"
)

type options struct {
	ttl      time.Duration
	clock    clock.Clock
	notifier types.Notifier
	metrics  types.Metrics
	log      logr.Logger
}

// Option configures a Cache or ShardedCache at construction.
type Option func(o *options)

// WithTTL sets the lifetime of every entry. Anything less than or equal to zero keeps DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		if d <= 0 {
			return
		}
		o.ttl = d
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c == nil {
			return
		}
		o.clock = c
	}
}

// WithNotifier sets who is told about evictions.
// A ShardedCache calls it from several goroutines at once.
func WithNotifier(n types.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

func WithMetrics(m types.Metrics) Option {
	return func(o *options) {
		if m == nil {
			return
		}
		o.metrics = m
	}
}

func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		ttl:     engine.DefaultTTL,
		clock:   clock.RealClock{},
		metrics: types.NoopMetrics{},
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) engine(log logr.Logger) *engine.CacheEngine {
	return engine.NewCacheEngine(o.ttl, o.clock, o.notifier, o.metrics, log)
}
