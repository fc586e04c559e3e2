package memory

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// payload approximates a cached AniList record
var payload = make([]byte, 4096)

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		cache.Set(ctx, fmt.Sprintf("anime:media:title-%d", i), payload, time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, fmt.Sprintf("anime:media:title-%d", i%1000))
	}
}

func BenchmarkMemoryCache_Set(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("translate:es:%d", i), payload, time.Hour)
	}
}

func BenchmarkMemoryCache_ConcurrentGetSet(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		cache.Set(ctx, fmt.Sprintf("anime:media:title-%d", i), payload, time.Hour)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("anime:media:title-%d", i%100)
			if i%10 == 0 {
				_ = cache.Set(ctx, key, payload, time.Hour)
			} else {
				_, _ = cache.Get(ctx, key)
			}
			i++
		}
	})
}
