package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/cache"
)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (ports.CacheEntry, bool, error) {
	return ports.CacheEntry{}, false, nil
}

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store unavailable")
}

func TestCacheHealthChecker_MemoryCache(t *testing.T) {
	hc := NewCacheHealthChecker("memory", cache.NewMemoryCache(nil))

	assert.Equal(t, "cache:memory", hc.Name())
	require.NoError(t, hc.Check(context.Background()))
}

func TestCacheHealthChecker_WriteFailure(t *testing.T) {
	hc := NewCacheHealthChecker("redis", brokenCache{})

	err := hc.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
}
