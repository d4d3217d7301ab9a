package engine

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/krisalay/ttl-cache/types"
)

// DefaultTTL is the lifetime given to every entry when none is configured.
const DefaultTTL = 10 * time.Second

/*
CacheEngine is the "brain" of the cache system.
It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- How long every entry lives (one TTL for the whole cache)
- Which clock measures that lifetime
- How metrics are recorded
- Who is told about an eviction, and how it is logged

It does NOT:
- Store data
- Order deadlines
- Handle locking
*/
type CacheEngine struct {

	// TTL is applied uniformly to every inserted entry. It is fixed at construction.
	TTL time.Duration

	// Clock is the time source for deadlines and for the purge timers.
	// Tests swap it for a fake clock.
	Clock clock.Clock

	// Notifier is told about every eviction. If nil, evictions are only logged.
	Notifier types.Notifier

	// Metrics is how we keep track of what the cache is doing.
	Metrics types.Metrics

	// Log receives eviction events at V(1) and notifier failures as errors.
	Log logr.Logger
}

/*
NewCacheEngine creates a CacheEngine.

Zero values are replaced by defaults: DefaultTTL, the wall clock, NoopMetrics.
*/
func NewCacheEngine(
	ttl time.Duration,
	clk clock.Clock,
	notifier types.Notifier,
	metrics types.Metrics,
	log logr.Logger,
) *CacheEngine {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	return &CacheEngine{
		TTL:      ttl,
		Clock:    clk,
		Notifier: notifier,
		Metrics:  metrics,
		Log:      log,
	}
}

// Now returns the current time of the engine's clock.
func (e *CacheEngine) Now() time.Time {
	return e.Clock.Now()
}

// OnRead records a lookup. Reads never touch the TTL.
func (e *CacheEngine) OnRead(hit bool) {
	if hit {
		e.Metrics.Hit()
		return
	}
	e.Metrics.Miss()
}

// OnInsert records a new entry. replaced is true when it overwrote a live key.
func (e *CacheEngine) OnInsert(ent *types.CacheEntry, replaced bool) {
	e.Metrics.Insert()
	e.Log.V(2).Info("Inserted entry", "key", ent.Key, "replaced", replaced)
}

// OnRemove records an explicit removal.
func (e *CacheEngine) OnRemove(ent *types.CacheEntry) {
	e.Metrics.Remove()
	e.Log.V(2).Info("Removed entry", "key", ent.Key)
}

/*
OnExpire is called once per evicted entry, after it has left the store.

The notifier error, if any, is logged and returned. Nothing here can bring
the entry back.
*/
func (e *CacheEngine) OnExpire(ctx context.Context, ent *types.CacheEntry) error {
	e.Metrics.Expire()
	e.Log.V(1).Info("Evicted expired entry", "key", ent.Key, "age", e.Clock.Since(ent.InsertedAt))

	if e.Notifier == nil {
		return nil
	}
	if err := e.Notifier.Evicted(ctx, ent); err != nil {
		e.Log.Error(err, "Eviction notification failed", "key", ent.Key)
		return err
	}
	return nil
}
