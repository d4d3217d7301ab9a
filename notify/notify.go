// Package notify provides the eviction notifiers shipped with the cache.
//
// Every notifier here is safe for concurrent use, so any of them can be
// given to a ShardedCache.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/krisalay/ttl-cache/types"
)

// Eviction is what Channel sends for every evicted entry.
type Eviction struct {
	Key   string
	Value any
}

type writer struct {
	mu sync.Mutex
	w  io.Writer
}

// Writer prints the key of every evicted entry on its own line.
func Writer(w io.Writer) types.Notifier {
	return &writer{w: w}
}

func (n *writer) Evicted(_ context.Context, ent *types.CacheEntry) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintln(n.w, ent.Key); err != nil {
		return errors.Wrap(err, "write evicted key")
	}
	return nil
}

// Logger logs every eviction at info level.
func Logger(log logr.Logger) types.Notifier {
	return types.NotifierFunc(func(_ context.Context, ent *types.CacheEntry) error {
		log.Info("Entry expired", "key", ent.Key)
		return nil
	})
}

/*
Channel sends every eviction to ch.

It blocks while ch is full, which slows the purge down to the pace of the
reader. If ctx ends first the eviction is dropped and the context error is
returned.
*/
func Channel(ch chan<- Eviction) types.Notifier {
	return types.NotifierFunc(func(ctx context.Context, ent *types.CacheEntry) error {
		select {
		case ch <- Eviction{Key: ent.Key, Value: ent.Value}:
			return nil
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "deliver eviction of %q", ent.Key)
		}
	})
}

// Multi notifies each of ns in order. All of them run even if one fails;
// the first failure is returned.
func Multi(ns ...types.Notifier) types.Notifier {
	return types.NotifierFunc(func(ctx context.Context, ent *types.CacheEntry) error {
		var first error
		for _, n := range ns {
			if n == nil {
				continue
			}
			if err := n.Evicted(ctx, ent); err != nil && first == nil {
				first = err
			}
		}
		return first
	})
}
