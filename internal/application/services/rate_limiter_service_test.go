package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	impl "github.com/FutureAlok1445/SpaceScope/internal/application/services"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rateLimitRepoMock struct {
	incrementFn func(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error)
}

func (m *rateLimitRepoMock) IncrementWindow(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	return m.incrementFn(ctx, clientKey, window, keyPrefix, ttl)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	repo := repositories.NewRateLimitMemoryRepository(fixedClock())
	svc := impl.NewRateLimiterService(repo, &impl.RateLimiterConfig{DefaultRequestsPerMinute: 2, BurstMultiplier: 1.5, Window: time.Minute}, nil)

	for i := 0; i < 3; i++ {
		allowed, remaining, limit, _, err := svc.Allow(context.Background(), "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2, limit)
		assert.Equal(t, 2-i, remaining)
	}
	allowed, remaining, _, reset, err := svc.Allow(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.Equal(t, fixedNow.Truncate(time.Minute).Add(time.Minute), reset)

	// other clients have their own window
	allowed, _, _, _, err = svc.Allow(context.Background(), "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_FailsOpenOnRepoError(t *testing.T) {
	repo := &rateLimitRepoMock{incrementFn: func(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
		assert.Equal(t, "ratelimit:client", keyPrefix)
		assert.Equal(t, 2*time.Minute, ttl)
		return 0, fixedNow, errors.New("redis down")
	}}
	svc := impl.NewRateLimiterService(repo, nil, nil)

	allowed, remaining, limit, _, err := svc.Allow(context.Background(), "c")
	assert.Error(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 120, limit)
	assert.Equal(t, 240, remaining)
}
