package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.

Implementations must be safe for concurrent use: a sharded cache reports from every shard.
*/
type Metrics interface {

	// Hit is called when Get finds the key.
	Hit()

	// Miss is called when Get does NOT find the key.
	Miss()

	// Insert is called for every inserted entry, including replacements.
	Insert()

	// Remove is called when a key is removed explicitly, before its deadline.
	Remove()

	// Expire is called when a key is evicted because its TTL elapsed.
	Expire()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

It is the default, so the cache never has to check for a nil Metrics.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Insert() {}
func (NoopMetrics) Remove() {}
func (NoopMetrics) Expire() {}
