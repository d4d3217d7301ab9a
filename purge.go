package cache

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// PurgeState is a step of the purge driver.
type PurgeState int8

const (
	// Scanning pulls due keys from the expiration queue and evicts them.
	Scanning PurgeState = iota
	// Draining is entered once the queue reports nothing left to produce.
	Draining
	// Done is terminal.
	Done
)

func (s PurgeState) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Draining:
		return "draining"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

/*
drive runs the purge state machine over c.

mu guards c. It is taken here, released while the queue sleeps and while
the notifier runs, so other writers are never held up by a purge.

With block set, Scanning waits for deadlines until the queue is empty.
Without it, Scanning stops at the first deadline that is not due yet.
*/
func (c *Cache) drive(ctx context.Context, mu sync.Locker, block bool) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	var (
		state   = Scanning
		evicted int
		log     = c.engine.Log.WithValues("blocking", block)
	)

	for state != Done {
		switch state {
		case Scanning:
			key, ok, err := c.next(ctx, mu, block)
			if err != nil {
				return evicted, err
			}
			if !ok {
				state = transition(log, state, Draining)
				continue
			}

			ent, ok := c.store.Delete(key)
			if !ok {
				// A deadline always has a live entry; nothing to evict otherwise.
				continue
			}
			evicted++

			mu.Unlock()
			err = c.engine.OnExpire(ctx, ent)
			mu.Lock()

			if err != nil {
				return evicted, errors.Wrapf(err, "notify eviction of %q", key)
			}

		case Draining:
			log.V(1).Info("Purge drained", "evicted", evicted, "pending", c.expirations.Len())
			state = transition(log, state, Done)
		}
	}

	return evicted, nil
}

func (c *Cache) next(ctx context.Context, mu sync.Locker, block bool) (string, bool, error) {
	if block {
		return c.expirations.PollExpiredLocked(ctx, mu)
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	key, ok := c.expirations.PopExpired()
	return key, ok, nil
}

func transition(log logr.Logger, from, to PurgeState) PurgeState {
	log.V(2).Info("Purge state changed", "from", from, "to", to)
	return to
}
