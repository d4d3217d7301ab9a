package types

import (
	"time"

	"github.com/krisalay/ttl-cache/expiration"
)

// CacheEntry is one stored key/value pair plus the handle of its pending deadline.
// Entries are never updated in place; a second insert of the same key replaces the entry.
type CacheEntry struct {
	Key        string
	Value      any
	InsertedAt time.Time

	// Handle points at the entry's deadline in the expiration queue.
	// It is only ever used to cancel that deadline.
	Handle expiration.Handle
}
