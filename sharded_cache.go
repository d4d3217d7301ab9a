package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/krisalay/ttl-cache/expiration"
	"github.com/krisalay/ttl-cache/shard"
)

/*
ShardedCache is the concurrency-safe variant of Cache.
This struct is the orchestrator that connects:
- shards, each one a Cache behind its own mutex
- shard selection
- a single purge run shared by every concurrent caller

Insert, Get and Remove only ever wait for the shard mutex, never for a purge:
a purging shard releases its lock while it sleeps and while it notifies.

The notifier and metrics given as options are shared by all shards and are
called concurrently.
*/
type ShardedCache struct {
	// shards are the actual storage units. Each shard is an independent mini-cache.
	shards []*shard.Shard[*Cache]

	// selector decides which shard a key should go to.
	selector shard.Selector

	// sf makes concurrent Purge calls share one run over the shards.
	sf singleflight.Group
}

// NewShardedCache creates an empty cache split into n shards (at least one).
func NewShardedCache(n int, opts ...Option) *ShardedCache {
	if n < 1 {
		n = 1
	}
	o := newOptions(opts)

	s := make([]*shard.Shard[*Cache], n)
	for i := range s {
		s[i] = shard.NewShard(newCache(o.engine(o.log.WithValues("shard", i))))
	}

	return &ShardedCache{
		shards:   s,
		selector: shard.HashSelector{},
	}
}

func (c *ShardedCache) shardFor(key string) *shard.Shard[*Cache] {
	return c.shards[c.selector.Select(key, len(c.shards))]
}

// Insert stores value under key. See Cache.Insert.
func (c *ShardedCache) Insert(key string, value any) expiration.Handle {
	sh := c.shardFor(key)
	sh.Lock()
	defer sh.Unlock()
	return sh.Cache.Insert(key, value)
}

// Get returns the value stored under key.
func (c *ShardedCache) Get(key string) (any, bool) {
	sh := c.shardFor(key)
	sh.Lock()
	defer sh.Unlock()
	return sh.Cache.Get(key)
}

// Remove deletes key and cancels its deadline. A purge sleeping on that
// deadline wakes up and re-evaluates.
func (c *ShardedCache) Remove(key string) bool {
	sh := c.shardFor(key)
	sh.Lock()
	defer sh.Unlock()
	return sh.Cache.Remove(key)
}

// TTL returns the remaining lifetime of key. See Cache.TTL.
func (c *ShardedCache) TTL(key string) time.Duration {
	sh := c.shardFor(key)
	sh.Lock()
	defer sh.Unlock()
	return sh.Cache.TTL(key)
}

// Len returns the number of entries over all shards.
func (c *ShardedCache) Len() int {
	n := 0
	for _, sh := range c.shards {
		sh.Lock()
		n += sh.Cache.Len()
		sh.Unlock()
	}
	return n
}

// Clear drops every entry of every shard without notifications.
func (c *ShardedCache) Clear() {
	for _, sh := range c.shards {
		sh.Lock()
		sh.Cache.Clear()
		sh.Unlock()
	}
}

/*
Purge evicts entries of every shard as they expire, blocking until all
shards are empty.

Shards are purged in parallel. The first failure cancels the others and is
returned. Calls made while a purge is already running join it instead of
starting a second one. A joined call goes around again when the shared run
ends without leaving the cache empty: entries were inserted into a shard the
run had already drained, or the call that started the run gave up. Only the
caller's own ctx aborts its Purge.
*/
func (c *ShardedCache) Purge(ctx context.Context) error {
	for {
		ch := c.sf.DoChan("purge", func() (any, error) {
			return nil, c.purgeShards(ctx)
		})

		var res singleflight.Result
		select {
		case res = <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}

		switch {
		case res.Err == nil:
			if c.Len() == 0 {
				return nil
			}
		case ctx.Err() != nil:
			return ctx.Err()
		case !canceled(res.Err):
			return res.Err
		}
	}
}

// canceled reports whether err comes from the context of the run, which may
// belong to another caller.
func canceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (c *ShardedCache) purgeShards(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sh := range c.shards {
		sh := sh
		g.Go(func() error {
			_, err := sh.Cache.drive(ctx, sh, true)
			return err
		})
	}
	return g.Wait()
}

// EvictExpired evicts every entry already due, shard by shard.
func (c *ShardedCache) EvictExpired(ctx context.Context) (int, error) {
	total := 0
	for _, sh := range c.shards {
		n, err := sh.Cache.drive(ctx, sh, false)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
