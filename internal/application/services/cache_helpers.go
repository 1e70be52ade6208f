package services

import (
	"context"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/goccy/go-json"
)

// Utility helpers
func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

// cacheGet decodes a fresh entry and reports when it was stored. Backend and
// decode errors are treated as misses.
func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (T, time.Time, bool) {
	var v T
	if c == nil {
		return v, time.Time{}, false
	}
	entry, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return v, time.Time{}, false
	}
	if err := json.Unmarshal(entry.Value, &v); err != nil {
		return v, time.Time{}, false
	}
	return v, entry.StoredAt, true
}
