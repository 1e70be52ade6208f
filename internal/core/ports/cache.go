package ports

import (
	"context"
	"time"
)

// CacheEntry is a stored value with the time it was written and its TTL.
type CacheEntry struct {
	Value    []byte
	StoredAt time.Time
	TTL      time.Duration
}

// Fresh reports whether the entry may still be served at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.StoredAt) < e.TTL
}

// Cache defines a minimal TTL key-value cache contract.
// Expired entries are reported as misses on read; nothing is swept in the background.
// Implementations should degrade gracefully (returning an error without crashing callers)
// so that the caller can go to the provider instead.
type Cache interface {
	// Get returns the entry for key. ok=false on a miss or an expired entry.
	Get(ctx context.Context, key string) (entry CacheEntry, ok bool, err error)
	// Set stores value for key with TTL, replacing any previous entry (last write wins).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
