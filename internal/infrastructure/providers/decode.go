// Package providers adapts external space-data APIs to the domain records.
// Every adapter decodes into an explicit wire schema and fails closed with
// ParseFailure when the payload has an unexpected shape.
package providers

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/goccy/go-json"
)

// RetryPolicy is passed through to the fetcher on every call.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the fetcher defaults used for all providers.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond}

func getJSON[T any](ctx context.Context, f ports.Fetcher, rawURL string, opts ports.FetchOptions, p RetryPolicy) fetch.Result[T] {
	raw := f.Fetch(ctx, rawURL, opts, p.MaxAttempts, p.BaseDelay)
	return fetch.Map(raw, func(b fetch.RawJSON) (T, error) {
		return decode[T](b)
	})
}

func decode[T any](b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decode payload: %w", err)
	}
	return v, nil
}

// isEmptyBody reports whether a payload carries no document at all.
func isEmptyBody(b []byte) bool {
	t := bytes.TrimSpace(b)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// cellFloat reads a numeric table cell that may be a JSON string, number or null.
// NaN and infinities are not readings and report false.
func cellFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		f, err = x.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func cellString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
