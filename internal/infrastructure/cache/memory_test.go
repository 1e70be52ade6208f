package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryCache_HitWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.NewMemoryCache(clock)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "iss-position", []byte(`{"latitude":1}`), 5*time.Second))
	clock.Advance(4999 * time.Millisecond)

	entry, ok, err := c.Get(ctx, "iss-position")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"latitude":1}`, string(entry.Value))
	assert.Equal(t, 5*time.Second, entry.TTL)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), entry.StoredAt)
}

func TestMemoryCache_MissAtExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.NewMemoryCache(clock)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 5*time.Second))
	clock.Advance(5 * time.Second)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_LastWriteWins(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.NewMemoryCache(clock)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("first"), time.Minute))
	clock.Advance(30 * time.Second)
	require.NoError(t, c.Set(ctx, "k", []byte("second"), time.Minute))
	clock.Advance(45 * time.Second)

	entry, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", string(entry.Value))
}

func TestMemoryCache_UnknownKeyAndInvalidTTL(t *testing.T) {
	c := cache.NewMemoryCache(ports.SystemClock)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "k", []byte("v"), 0))
}

func TestMemoryCache_StoredValueIsCopied(t *testing.T) {
	c := cache.NewMemoryCache(nil)
	ctx := context.Background()
	buf := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", buf, time.Minute))
	buf[0] = 'x'

	entry, ok, _ := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "abc", string(entry.Value))
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := cache.NewMemoryCache(nil)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Set(ctx, "shared", []byte("v"), time.Minute)
				_, _, _ = c.Get(ctx, "shared")
			}
		}()
	}
	wg.Wait()
	_, ok, _ := c.Get(ctx, "shared")
	assert.True(t, ok)
}
