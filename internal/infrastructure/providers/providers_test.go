package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/fetcher"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/providers"
)

var (
	testNow   = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	testClock = ports.ClockFunc(func() time.Time { return testNow })
	oneShot   = providers.RetryPolicy{MaxAttempts: 1}
)

// routes serves canned bodies by path; unknown paths answer 404.
func routes(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newFetcher(srv *httptest.Server) ports.Fetcher {
	return fetcher.NewRetryingFetcher(srv.Client(), fetcher.Config{Provider: "test"}, testClock, nil)
}

type failingFetcher struct{ kind fetch.ErrorKind }

func (f failingFetcher) Fetch(context.Context, string, ports.FetchOptions, int, time.Duration) fetch.Result[fetch.RawJSON] {
	return fetch.FailWith[fetch.RawJSON](f.kind, "stubbed failure")
}
