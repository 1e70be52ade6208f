package redis

import (
	"context"
	"errors"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
)

// RedisCache implements ports.Cache using a Redis client so that several
// API instances share one set of upstream snapshots.
type RedisCache struct {
	r redis.Cmdable
	// optional key prefix to namespace entries
	prefix string
	clock  ports.Clock
}

// storedEntry is the on-wire form of a cache entry.
type storedEntry struct {
	Value    []byte    `json:"value"`
	StoredAt time.Time `json:"storedAt"`
	TTLMs    int64     `json:"ttlMs"`
}

// NewRedisCache creates a new Redis-backed cache.
func NewRedisCache(r redis.Cmdable, prefix string, clock ports.Clock) *RedisCache {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &RedisCache{r: r, prefix: prefix, clock: clock}
}

func (c *RedisCache) namespaced(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// Get implements Cache.Get.
func (c *RedisCache) Get(ctx context.Context, key string) (ports.CacheEntry, bool, error) {
	ns := c.namespaced(key)
	val, err := c.r.Get(ctx, ns).Bytes()
	if err == redis.Nil {
		return ports.CacheEntry{}, false, nil
	}
	if err != nil {
		return ports.CacheEntry{}, false, err
	}
	entry, err := decodeEntry(val)
	if err != nil {
		return ports.CacheEntry{}, false, err
	}
	// Redis expiry is only second-accurate and clocks may differ between instances.
	if !entry.Fresh(c.clock.Now()) {
		return ports.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// Set implements Cache.Set.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("cache ttl must be positive")
	}
	payload, err := encodeEntry(ports.CacheEntry{Value: value, StoredAt: c.clock.Now(), TTL: ttl})
	if err != nil {
		return err
	}
	ns := c.namespaced(key)
	return c.r.Set(ctx, ns, payload, ttl).Err()
}

func encodeEntry(e ports.CacheEntry) ([]byte, error) {
	return json.Marshal(storedEntry{Value: e.Value, StoredAt: e.StoredAt, TTLMs: e.TTL.Milliseconds()})
}

func decodeEntry(b []byte) (ports.CacheEntry, error) {
	var s storedEntry
	if err := json.Unmarshal(b, &s); err != nil {
		return ports.CacheEntry{}, err
	}
	return ports.CacheEntry{Value: s.Value, StoredAt: s.StoredAt, TTL: time.Duration(s.TTLMs) * time.Millisecond}, nil
}
