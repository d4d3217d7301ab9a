package types

import "context"

//go:generate mockgen -package mock -destination=../mock/types.go github.com/krisalay/ttl-cache/types Metrics,Notifier

/*
Notifier receives one call per evicted entry.

The entry is already gone from the cache when Evicted runs. Returning an error
does NOT put it back: the error is only reported to whoever drives the purge.

Evicted may block (for example to apply backpressure); it should honour ctx.
*/
type Notifier interface {
	Evicted(ctx context.Context, ent *CacheEntry) error
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(ctx context.Context, ent *CacheEntry) error

// Evicted calls f(ctx, ent).
func (f NotifierFunc) Evicted(ctx context.Context, ent *CacheEntry) error {
	return f(ctx, ent)
}
