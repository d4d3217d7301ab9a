package shard_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krisalay/ttl-cache/shard"
)

func TestHashSelectorIsStableAndInRange(t *testing.T) {
	var sel shard.HashSelector

	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("key-%d", i)
		idx := sel.Select(key, 8)

		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
		assert.Equal(t, idx, sel.Select(key, 8))
	}
}

func TestHashSelectorSpreadsKeys(t *testing.T) {
	var sel shard.HashSelector
	counts := make([]int, 4)

	for i := 0; i < 4000; i++ {
		counts[sel.Select(fmt.Sprintf("key-%d", i), len(counts))]++
	}

	for i, c := range counts {
		assert.Greater(t, c, 500, "shard %d is starved", i)
	}
}

func TestHashSelectorSingleShard(t *testing.T) {
	var sel shard.HashSelector
	assert.Zero(t, sel.Select("anything", 1))
	assert.Zero(t, sel.Select("anything", 0))
}
