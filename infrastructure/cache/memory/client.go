// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local cache with TTL support and periodic cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrKeyNotFound is returned for missing or expired keys
var ErrKeyNotFound = errors.New("key not found")

const defaultCleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithCleanup(defaultCleanupInterval)
}

// NewMemoryCacheWithCleanup creates a cache that purges expired items every
// cleanupInterval. A non-positive interval disables the janitor; expired
// items are still never returned.
func NewMemoryCacheWithCleanup(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	stored, ok := value.([]byte)
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Return a copy of the value
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. Zero means no expiry.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// ItemCount reports the number of stored items, including expired ones not yet purged
func (c *MemoryCache) ItemCount() int {
	return c.items.ItemCount()
}

// Flush removes every item
func (c *MemoryCache) Flush() {
	c.items.Flush()
}
