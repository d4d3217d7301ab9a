package store

import (
	"sort"

	"github.com/krisalay/ttl-cache/types"
)

/*
This file defines how cache entries are kept by key.

Store is the KeyedStore of the cache: a plain map from key to entry.
Every operation is O(1) except Keys, which is a debugging helper.

Store knows nothing about time. It stores the expiration handle next to the
value and hands it back on removal; it never looks inside it.

Store is not safe for concurrent use. The owning cache (or shard) guards it.
*/
type Store struct {
	entries map[string]*types.CacheEntry
}

func New() *Store {
	return &Store{entries: make(map[string]*types.CacheEntry)}
}

// Get retrieves an entry by key.
func (s *Store) Get(key string) (*types.CacheEntry, bool) {
	ent, ok := s.entries[key]
	return ent, ok
}

// Put inserts ent under ent.Key and returns the entry it replaced, if any.
func (s *Store) Put(ent *types.CacheEntry) (*types.CacheEntry, bool) {
	prev, ok := s.entries[ent.Key]
	s.entries[ent.Key] = ent
	return prev, ok
}

// Delete removes an entry and returns it.
func (s *Store) Delete(key string) (*types.CacheEntry, bool) {
	ent, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	return ent, ok
}

// Len returns how many entries are stored.
func (s *Store) Len() int {
	return len(s.entries)
}

// Keys returns every stored key in lexical order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset removes every entry.
func (s *Store) Reset() {
	s.entries = make(map[string]*types.CacheEntry)
}
