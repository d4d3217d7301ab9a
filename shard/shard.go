package shard

import "sync"

/*
This file defines what a "Shard" is. A shard is a small, independent piece of the cache.
Instead of having: One big cache and one big lock
We split the cache into many shards. Each shard:
- Holds some portion of the data
- Has its own expiration queue
- Has its own lock

Shard itself implements sync.Locker, so it can be handed to code that must
release the lock while it sleeps (the purge driver does exactly that).
*/
type Shard[T any] struct {
	sync.Mutex

	// Cache holds the data of this shard. Only touch it while holding the lock.
	Cache T
}

func NewShard[T any](c T) *Shard[T] {
	return &Shard[T]{Cache: c}
}
