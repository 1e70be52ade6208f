package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/go-redis/redis/v8"
)

// RateLimitRedisRepository implements rate limiting counter storage with Redis.
type RateLimitRedisRepository struct {
	r     redis.Cmdable
	clock ports.Clock
}

func NewRateLimitRedisRepository(r redis.Cmdable, clock ports.Clock) *RateLimitRedisRepository {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &RateLimitRedisRepository{r: r, clock: clock}
}

// IncrementWindow increments a per-client counter for a fixed window.
func (repo *RateLimitRedisRepository) IncrementWindow(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	windowStart := repo.clock.Now().Truncate(window)
	key := fmt.Sprintf("%s:%s:%d", keyPrefix, clientKey, windowStart.Unix())
	pipe := repo.r.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, windowStart, err
	}
	return int(incr.Val()), windowStart, nil
}

// RateLimitMemoryRepository keeps fixed-window counters in process for
// single-instance deployments without Redis.
type RateLimitMemoryRepository struct {
	mu      sync.Mutex
	clock   ports.Clock
	counts  map[string]int
	expires map[string]time.Time
}

func NewRateLimitMemoryRepository(clock ports.Clock) *RateLimitMemoryRepository {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &RateLimitMemoryRepository{clock: clock, counts: make(map[string]int), expires: make(map[string]time.Time)}
}

// IncrementWindow increments a per-client counter for a fixed window.
// Expired windows are dropped on the next increment.
func (repo *RateLimitMemoryRepository) IncrementWindow(_ context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	now := repo.clock.Now()
	windowStart := now.Truncate(window)
	key := fmt.Sprintf("%s:%s:%d", keyPrefix, clientKey, windowStart.Unix())

	repo.mu.Lock()
	defer repo.mu.Unlock()
	for k, exp := range repo.expires {
		if !now.Before(exp) {
			delete(repo.expires, k)
			delete(repo.counts, k)
		}
	}
	repo.counts[key]++
	repo.expires[key] = now.Add(ttl)
	return repo.counts[key], windowStart, nil
}
