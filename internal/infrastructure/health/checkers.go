package health

import (
	"context"
	"fmt"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/go-redis/redis/v8"
)

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client redis.Cmdable }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client redis.Cmdable) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

const cacheProbeKey = "health:probe"

// cacheHealthChecker round-trips a short-lived probe entry through the cache.
type cacheHealthChecker struct {
	name  string
	cache ports.Cache
}

func (c *cacheHealthChecker) Name() string { return c.name }

func (c *cacheHealthChecker) Check(ctx context.Context) error {
	if err := c.cache.Set(ctx, cacheProbeKey, []byte("ok"), 10*time.Second); err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	if _, ok, err := c.cache.Get(ctx, cacheProbeKey); err != nil {
		return fmt.Errorf("cache read: %w", err)
	} else if !ok {
		return fmt.Errorf("cache read: probe entry missing")
	}
	return nil
}

// NewCacheHealthChecker creates a health checker for the response cache.
// backend names the dependency in the health report (e.g. "cache:memory").
func NewCacheHealthChecker(backend string, cache ports.Cache) ports.HealthChecker {
	return &cacheHealthChecker{name: "cache:" + backend, cache: cache}
}
