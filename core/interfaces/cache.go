// Package interfaces defines the contracts between the core services and the
// infrastructure that backs them, so either side can be swapped in tests.
package interfaces

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTLs.
// Backed by go-cache, Redis or SQLite.
//
// Example usage:
//
//	data, err := cache.Get(ctx, "anime:media:naruto")
//	if err != nil {
//		// miss: fetch from AniList, then
//		err = cache.Set(ctx, "anime:media:naruto", data, 24*time.Hour)
//	}
type Cache interface {
	// Get returns the stored value or an error on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl stores it indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
