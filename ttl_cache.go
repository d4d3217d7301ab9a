package cache

import (
	"context"
	"time"

	"github.com/krisalay/ttl-cache/api"
	"github.com/krisalay/ttl-cache/engine"
	"github.com/krisalay/ttl-cache/expiration"
	"github.com/krisalay/ttl-cache/store"
	"github.com/krisalay/ttl-cache/types"
)

// DefaultTTL is the lifetime of every entry unless WithTTL says otherwise.
const DefaultTTL = engine.DefaultTTL

// KeyNotFound is returned by TTL for a key that is not in the cache.
const KeyNotFound time.Duration = -2

var (
	_ api.Cache = (*Cache)(nil)
	_ api.Cache = (*ShardedCache)(nil)
)

/*
Cache is a time-to-live key/value cache.

It couples two structures:
- store: key -> (value, expiration handle), O(1) insert/lookup/removal
- expirations: every pending deadline in time order

Every live entry has exactly one pending deadline and every pending deadline
belongs to a live entry. Insert, Remove and the purge driver keep both sides
in step.

A Cache has a single owner: it has no internal locking. Purge is the only
method that blocks. Use ShardedCache to share a cache between goroutines.
*/
type Cache struct {
	store       *store.Store
	expirations *expiration.Queue
	engine      *engine.CacheEngine
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	o := newOptions(opts)
	return newCache(o.engine(o.log))
}

func newCache(e *engine.CacheEngine) *Cache {
	return &Cache{
		store:       store.New(),
		expirations: expiration.NewQueue(e.Clock),
		engine:      e,
	}
}

/*
Insert stores value under key for the cache's TTL.

If key is already present its entry and pending deadline are replaced
outright, so the key now expires TTL after this call. The returned handle
identifies the new deadline.
*/
func (c *Cache) Insert(key string, value any) expiration.Handle {
	if prev, ok := c.store.Get(key); ok {
		c.expirations.Cancel(prev.Handle)
	}

	ent := &types.CacheEntry{
		Key:        key,
		Value:      value,
		InsertedAt: c.engine.Now(),
		Handle:     c.expirations.Schedule(key, c.engine.TTL),
	}
	_, replaced := c.store.Put(ent)

	c.engine.OnInsert(ent, replaced)
	return ent.Handle
}

// Get returns the value stored under key. It never extends the key's lifetime.
func (c *Cache) Get(key string) (any, bool) {
	ent, ok := c.store.Get(key)
	c.engine.OnRead(ok)
	if !ok {
		return nil, false
	}
	return ent.Value, true
}

/*
Remove deletes key and cancels its pending deadline, so no eviction
notification will ever be sent for it. It reports whether key was present.
*/
func (c *Cache) Remove(key string) bool {
	ent, ok := c.store.Delete(key)
	if !ok {
		return false
	}
	c.expirations.Cancel(ent.Handle)
	c.engine.OnRemove(ent)
	return true
}

/*
TTL returns how long key has left before it becomes due.

RETURN VALUES:
--------------
> 0          : time remaining
0            : due, but not evicted yet (no purge has run since)
KeyNotFound  : key is not in the cache
*/
func (c *Cache) TTL(key string) time.Duration {
	ent, ok := c.store.Get(key)
	if !ok {
		return KeyNotFound
	}
	deadline, ok := c.expirations.Deadline(ent.Handle)
	if !ok {
		return KeyNotFound
	}
	if d := deadline.Sub(c.engine.Now()); d > 0 {
		return d
	}
	return 0
}

// Len returns the number of live entries, including due ones not purged yet.
func (c *Cache) Len() int {
	return c.store.Len()
}

// Keys returns every live key in lexical order.
func (c *Cache) Keys() []string {
	return c.store.Keys()
}

// Clear drops every entry and every pending deadline. No notifications are sent.
func (c *Cache) Clear() {
	c.store.Reset()
	c.expirations.Reset()
}

/*
Purge evicts entries as their deadlines elapse, blocking until no deadline
is left.

Each eviction removes the entry first and then notifies. On a notifier error
Purge stops and returns it; the entry stays removed and the remaining
deadlines stay pending for a later Purge. If ctx ends first, Purge returns
ctx.Err() with the same guarantee.

Purge on an empty cache returns immediately.
*/
func (c *Cache) Purge(ctx context.Context) error {
	_, err := c.drive(ctx, nopLocker{}, true)
	return err
}

// EvictExpired evicts every entry that is already due and returns how many
// were evicted. It never waits for a deadline.
func (c *Cache) EvictExpired(ctx context.Context) (int, error) {
	return c.drive(ctx, nopLocker{}, false)
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}
