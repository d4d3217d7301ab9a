package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	testingclock "k8s.io/utils/clock/testing"

	cache "github.com/krisalay/ttl-cache"
)

func newBenchmarkCache() *cache.ShardedCache {
	return cache.NewShardedCache(8, cache.WithTTL(10*time.Second))
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	c := cache.New()
	c.Insert("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkCacheInsert(b *testing.B) {
	c := cache.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert(fmt.Sprintf("key-%d", i), i)
	}
}

func BenchmarkCacheInsertOverwrite(b *testing.B) {
	c := cache.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert("key", i)
	}
}

func BenchmarkCachePurge(b *testing.B) {
	ctx := context.Background()
	clk := testingclock.NewFakeClock(time.Now())
	c := cache.New(cache.WithClock(clk))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert(fmt.Sprintf("key-%d", i), i)
	}
	clk.Step(time.Hour)
	if err := c.Purge(ctx); err != nil {
		b.Fatal(err)
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkShardedParallelGet(b *testing.B) {
	c := newBenchmarkCache()

	for i := 0; i < 1000; i++ {
		c.Insert(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get("key-42")
		}
	})
}

func BenchmarkShardedHighConcurrency(b *testing.B) {
	c := newBenchmarkCache()

	keys := make([]string, 10000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		c.Insert(keys[i], i)
	}

	b.ResetTimer()

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < b.N/100; j++ {
				key := keys[(j+id)%len(keys)]
				if j%4 == 0 {
					c.Insert(key, j)
					continue
				}
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
}
