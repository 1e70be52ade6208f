package fetcher

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context, rawURL string) fetch.Result[fetch.RawJSON]

func (f fetcherFunc) Fetch(ctx context.Context, rawURL string, _ ports.FetchOptions, _ int, _ time.Duration) fetch.Result[fetch.RawJSON] {
	return f(ctx, rawURL)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	var calls int32
	inner := fetcherFunc(func(context.Context, string) fetch.Result[fetch.RawJSON] {
		atomic.AddInt32(&calls, 1)
		return fetch.FailWith[fetch.RawJSON](fetch.NetworkFailure, "boom")
	})
	b := NewBreakerFetcher(inner, "breaker-open-test", BreakerConfig{ConsecutiveFailures: 3, OpenTimeout: time.Hour}, nil)

	for i := 0; i < 3; i++ {
		res := b.Fetch(context.Background(), "http://x", ports.FetchOptions{}, 1, 0)
		require.False(t, res.IsOk())
		assert.Equal(t, "boom", res.Err().Message)
	}
	assert.Equal(t, "open", b.State())

	res := b.Fetch(context.Background(), "http://x", ports.FetchOptions{}, 1, 0)
	require.False(t, res.IsOk())
	assert.Equal(t, fetch.NetworkFailure, res.Err().Kind)
	assert.Equal(t, "circuit open", res.Err().Message)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestBreaker_NotFoundKeepsCircuitClosed(t *testing.T) {
	inner := fetcherFunc(func(context.Context, string) fetch.Result[fetch.RawJSON] {
		return fetch.Fail[fetch.RawJSON](&fetch.Error{Kind: fetch.NotFound, Message: "resource not found", StatusCode: 404})
	})
	b := NewBreakerFetcher(inner, "breaker-notfound-test", BreakerConfig{ConsecutiveFailures: 2, OpenTimeout: time.Hour}, nil)

	for i := 0; i < 5; i++ {
		res := b.Fetch(context.Background(), "http://x", ports.FetchOptions{}, 1, 0)
		require.False(t, res.IsOk())
		assert.Equal(t, fetch.NotFound, res.Err().Kind)
	}
	assert.Equal(t, "closed", b.State())
	assert.Equal(t, "breaker-notfound-test", b.Name())
}

func TestBreaker_PassesSuccessThrough(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	inner := fetcherFunc(func(context.Context, string) fetch.Result[fetch.RawJSON] {
		return fetch.Ok(fetch.RawJSON(`{}`), at)
	})
	b := NewBreakerFetcher(inner, "breaker-ok-test", BreakerConfig{}, nil)

	res := b.Fetch(context.Background(), "http://x", ports.FetchOptions{}, 1, 0)
	require.True(t, res.IsOk())
	body, got := res.Value()
	assert.Equal(t, `{}`, string(body))
	assert.Equal(t, at, got)
}
