package data

import (
	"context"
	"sync"
	"time"

	"river-watch/internal/metrics"
)

type memEntry struct {
	value     []byte
	expiresAt time.Time
}

type MemCache struct {
	cache map[string]memEntry
	mutex sync.RWMutex
}

func NewMemCache() *MemCache {
	return &MemCache{
		cache: make(map[string]memEntry),
	}
}

// Get returns the cached value for a key, treating expired entries as absent.
func (d *MemCache) Get(_ context.Context, key string) ([]byte, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	entry, exists := d.cache[key]
	if !exists || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeMemory).Inc()
	return entry.value, true
}

// Set sets (or inserts) the value of a key. A zero ttl means no expiry.
func (d *MemCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	entry := memEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	d.cache[key] = entry
}

// Delete removes an entry from the cache
func (d *MemCache) Delete(_ context.Context, key string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.cache, key)
}

// Size returns the current number of elements in the cache
func (d *MemCache) Size(_ context.Context) int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return len(d.cache)
}
