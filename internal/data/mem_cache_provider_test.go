package data

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemCache_SetAndGet(t *testing.T) {
	cache := NewMemCache()
	ctx := context.Background()

	cache.Set(ctx, "summary:otterbourne", []byte(`{"station":"otterbourne"}`), 0)

	value, found := cache.Get(ctx, "summary:otterbourne")
	if !found {
		t.Fatal("expected key to be present")
	}
	if string(value) != `{"station":"otterbourne"}` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestMemCache_GetMissingKey(t *testing.T) {
	cache := NewMemCache()

	if _, found := cache.Get(context.Background(), "summary:nowhere"); found {
		t.Error("expected miss for unknown key")
	}
}

func TestMemCache_ExpiredEntryIsAbsent(t *testing.T) {
	cache := NewMemCache()
	ctx := context.Background()

	cache.Set(ctx, "summary:otterbourne", []byte("stale"), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	if _, found := cache.Get(ctx, "summary:otterbourne"); found {
		t.Error("expected expired entry to read as absent")
	}
}

func TestMemCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemCache()
	ctx := context.Background()

	cache.Set(ctx, "summary:otterbourne", []byte("fresh"), 0)
	time.Sleep(5 * time.Millisecond)

	if _, found := cache.Get(ctx, "summary:otterbourne"); !found {
		t.Error("expected zero-ttl entry to persist")
	}
}

func TestMemCache_DeleteAndSize(t *testing.T) {
	cache := NewMemCache()
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), 0)
	cache.Set(ctx, "b", []byte("2"), 0)

	if size := cache.Size(ctx); size != 2 {
		t.Errorf("expected size 2, got %d", size)
	}

	cache.Delete(ctx, "a")

	if size := cache.Size(ctx); size != 1 {
		t.Errorf("expected size 1 after delete, got %d", size)
	}

	if _, found := cache.Get(ctx, "a"); found {
		t.Error("expected deleted key to be absent")
	}
}

func BenchmarkMemCache_Set(b *testing.B) {
	cache := NewMemCache()
	ctx := context.Background()
	payload := []byte(`{"station":"otterbourne","dailyRainfall":4.2}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Set(ctx, fmt.Sprintf("summary:%d", i%100), payload, time.Minute)
	}
}

func BenchmarkMemCache_Get(b *testing.B) {
	cache := NewMemCache()
	ctx := context.Background()
	payload := []byte(`{"station":"otterbourne","dailyRainfall":4.2}`)

	for i := 0; i < 100; i++ {
		cache.Set(ctx, fmt.Sprintf("summary:%d", i), payload, time.Minute)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(ctx, fmt.Sprintf("summary:%d", i%100))
	}
}

func BenchmarkMemCache_ConcurrentReadWrite(b *testing.B) {
	cache := NewMemCache()
	ctx := context.Background()
	payload := []byte(`{"station":"otterbourne"}`)

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				cache.Set(ctx, fmt.Sprintf("summary:%d", i%100), payload, time.Minute)
			} else {
				cache.Get(ctx, fmt.Sprintf("summary:%d", i%100))
			}
			i++
		}
	})
}
