package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
)

// MemoryCache is an in-process ports.Cache. Expiry is lazy: an expired entry
// stays in the map until overwritten but is never returned as fresh.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]ports.CacheEntry
	clock   ports.Clock
}

// NewMemoryCache creates an empty cache reading time from clock.
func NewMemoryCache(clock ports.Clock) *MemoryCache {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &MemoryCache{entries: make(map[string]ports.CacheEntry), clock: clock}
}

// Get implements Cache.Get.
func (m *MemoryCache) Get(_ context.Context, key string) (ports.CacheEntry, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || !entry.Fresh(m.clock.Now()) {
		return ports.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// Set implements Cache.Set.
func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("cache ttl must be positive")
	}
	entry := ports.CacheEntry{
		Value:    append([]byte(nil), value...),
		StoredAt: m.clock.Now(),
		TTL:      ttl,
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Name() string { return "cache" }

// Check implements ports.HealthChecker; an in-process map is always reachable.
func (m *MemoryCache) Check(context.Context) error { return nil }
