package api

import (
	"context"
	"time"

	"github.com/krisalay/ttl-cache/expiration"
)

/*
Cache defines the PUBLIC API of our TTL cache.
This is a contract that guarantees certain behaviors, without exposing internals.
The store, the expiration queue and (for the sharded variant) locking are
hidden behind this interface.

Every entry lives for the same fixed TTL, chosen when the cache is built.
*/
type Cache interface {

	/*
		Insert stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- Schedules the key to expire TTL from now
		- If the key already exists, its value AND its deadline are replaced
		- Never fails

		The returned handle identifies the pending deadline. It is opaque.
	*/
	Insert(key string, value any) expiration.Handle

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		- Returns the value while the entry is in the cache
		- Does NOT extend the entry's lifetime
		- A due entry stays readable until a purge evicts it
	*/
	Get(key string) (any, bool)

	/*
		Remove deletes a key from the cache immediately.

		BEHAVIOR:
		---------
		- Removes the key from storage
		- Cancels its pending deadline, so it will never be reported as evicted

		This operation is idempotent:
		- Removing a non-existing key is safe and returns false
	*/
	Remove(key string) bool

	/*
		TTL returns the remaining time-to-live for a key.

		RETURN VALUES:
		--------------
		> 0   : Duration remaining before expiration
		0     : Due, waiting for a purge
		-2    : Key does not exist
	*/
	TTL(key string) time.Duration

	// Len returns the number of entries currently stored.
	Len() int

	/*
		Purge evicts entries as their deadlines elapse.

		BEHAVIOR:
		---------
		- Blocks until every pending deadline has fired
		- Sends one notification per evicted entry
		- Returns immediately when nothing is pending
		- Stops early on ctx cancellation or a notifier error; what is left
		  stays pending for the next Purge
	*/
	Purge(ctx context.Context) error

	/*
		EvictExpired evicts only the entries that are already due and returns
		how many it evicted. It never waits.
	*/
	EvictExpired(ctx context.Context) (int, error)
}
