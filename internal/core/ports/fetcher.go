package ports

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
)

// FetchOptions tunes a single provider request.
type FetchOptions struct {
	Query  url.Values
	Header http.Header
	// Timeout bounds each attempt; zero uses the fetcher default.
	Timeout time.Duration
	// NotFoundIsFinal makes a 404 end the call at once as NotFound. Use it for
	// lookups by id; otherwise a 404 is retried like any other non-2xx status.
	NotFoundIsFinal bool
}

// Fetcher performs a GET against an external provider with bounded retries.
// It never panics or returns a transport error directly: every failure is a failed Result.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, opts FetchOptions, maxAttempts int, baseDelay time.Duration) fetch.Result[fetch.RawJSON]
}
