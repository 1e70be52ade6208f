package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FutureAlok1445/SpaceScope/internal/application/services"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/cache"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/fetcher"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/httpserver"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/providers"
	tmocks "github.com/FutureAlok1445/SpaceScope/test/mocks"
)

var fetchedAt = time.Date(2026, 4, 20, 18, 0, 0, 0, time.UTC)

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Fallback  *bool           `json:"fallback"`
	Cached    *bool           `json:"cached"`
	Error     string          `json:"error"`
	FetchedAt *time.Time      `json:"fetchedAt"`
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestServer(t *testing.T, deps httpserver.ServerDeps) *httptest.Server {
	t.Helper()
	srv := httpserver.NewServer(&httpserver.ServerConfig{AllowedOrigins: []string{"*"}}, quietLogger(), deps)
	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (int, envelope) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func TestISSPosition_EndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/iss-now.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"success","iss_position":{"latitude":"10.5","longitude":"-20.25"},"timestamp":1700000000}`))
	}))
	defer upstream.Close()

	clock := ports.ClockFunc(func() time.Time { return fetchedAt })
	f := fetcher.NewRetryingFetcher(upstream.Client(), fetcher.Config{Provider: "open-notify"}, clock, nil)
	agg := services.NewAggregationService(
		services.Providers{ISS: providers.NewOpenNotifyProvider(f, upstream.URL, providers.RetryPolicy{MaxAttempts: 1})},
		cache.NewMemoryCache(clock),
		services.DefaultPolicies(services.CacheTTLs{}, services.FallbackTimeouts{}),
		clock,
		quietLogger(),
	)
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: agg})

	code, env := get(t, ts, "/api/iss")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Fallback)
	assert.Nil(t, env.Cached)
	require.NotNil(t, env.FetchedAt)
	assert.True(t, fetchedAt.Equal(*env.FetchedAt))

	var pos iss.Position
	require.NoError(t, json.Unmarshal(env.Data, &pos))
	assert.Equal(t, iss.Position{Latitude: 10.5, Longitude: -20.25, Altitude: 420, Velocity: 27600, Timestamp: 1700000000}, pos)

	_, again := get(t, ts, "/api/iss")
	require.NotNil(t, again.Cached)
	assert.True(t, *again.Cached)
}

func TestEnvelope_FallbackFlag(t *testing.T) {
	agg := &tmocks.AggregationServiceMock{GetSpaceWeatherFn: func(ctx context.Context) ports.Outcome[weather.Snapshot] {
		return ports.Outcome[weather.Snapshot]{Data: services.SyntheticSpaceWeather(fetchedAt), Fallback: true, FetchedAt: fetchedAt}
	}}
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: agg})

	code, env := get(t, ts, "/api/weather")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Fallback)
	assert.True(t, *env.Fallback)
	assert.NotEmpty(t, env.Data)
}

func TestMission_NotFound(t *testing.T) {
	agg := &tmocks.AggregationServiceMock{GetMissionByIDFn: func(ctx context.Context, id string) (ports.Outcome[mission.Record], error) {
		assert.Equal(t, "no-such-mission", id)
		return ports.Outcome[mission.Record]{}, fetch.Errorf(fetch.NotFound, "Mission not found")
	}}
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: agg})

	code, env := get(t, ts, "/api/missions/no-such-mission")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Mission not found", env.Error)
	assert.Empty(t, env.Data)
}

func TestMission_RocketsRouteIsNotAnID(t *testing.T) {
	agg := &tmocks.AggregationServiceMock{
		GetRocketsFn: func(ctx context.Context) ports.Outcome[[]mission.Rocket] {
			return ports.Outcome[[]mission.Rocket]{Data: mission.KnownRockets(), FetchedAt: fetchedAt}
		},
		GetMissionByIDFn: func(ctx context.Context, id string) (ports.Outcome[mission.Record], error) {
			t.Errorf("unexpected mission lookup for %q", id)
			return ports.Outcome[mission.Record]{}, nil
		},
	}
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: agg})

	code, env := get(t, ts, "/api/missions/rockets/all")
	require.Equal(t, http.StatusOK, code)
	var rockets []mission.Rocket
	require.NoError(t, json.Unmarshal(env.Data, &rockets))
	assert.Len(t, rockets, 4)
}

func TestISSPasses_Query(t *testing.T) {
	var got iss.Location
	agg := &tmocks.AggregationServiceMock{GetISSPassesFn: func(ctx context.Context, loc iss.Location) (ports.Outcome[iss.PassPrediction], error) {
		got = loc
		return ports.Outcome[iss.PassPrediction]{Data: iss.PredictPasses(loc.Rounded(), fetchedAt), FetchedAt: fetchedAt}, nil
	}}
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: agg})

	code, env := get(t, ts, "/api/iss/passes")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, iss.DefaultLocation, got)

	code, _ = get(t, ts, "/api/iss/passes?lat=51.5&lon=-0.12")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, iss.Location{Latitude: 51.5, Longitude: -0.12}, got)

	code, env = get(t, ts, "/api/iss/passes?lat=95&lon=0")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	code, env = get(t, ts, "/api/iss/passes?lat=north")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "lat and lon must be numbers", env.Error)
}

func TestISSPasses_ServiceInvalidInputIs400(t *testing.T) {
	agg := &tmocks.AggregationServiceMock{GetISSPassesFn: func(ctx context.Context, loc iss.Location) (ports.Outcome[iss.PassPrediction], error) {
		return ports.Outcome[iss.PassPrediction]{}, fetch.Errorf(fetch.InvalidInput, "invalid location")
	}}
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: agg})

	code, env := get(t, ts, "/api/iss/passes?lat=1&lon=2")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid location", env.Error)
}

func TestEveryCapabilityRouteAnswersSuccess(t *testing.T) {
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: &tmocks.AggregationServiceMock{}})

	for _, path := range []string{
		"/api/iss",
		"/api/iss/crew",
		"/api/iss/passes",
		"/api/celestial",
		"/api/celestial/events",
		"/api/celestial/aurora",
		"/api/weather",
		"/api/weather/imagery",
		"/api/weather/radiation",
		"/api/missions",
		"/api/missions/rockets/all",
		"/api/missions/jwst",
	} {
		t.Run(path, func(t *testing.T) {
			code, env := get(t, ts, path)
			assert.Equal(t, http.StatusOK, code)
			assert.True(t, env.Success)
			assert.Empty(t, env.Error)
		})
	}
}

func TestUnknownRoute_EnvelopeError(t *testing.T) {
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: &tmocks.AggregationServiceMock{}})

	code, env := get(t, ts, "/api/academy")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestRateLimited_Returns429Envelope(t *testing.T) {
	limiter := &tmocks.RateLimiterServiceMock{AllowFn: func(ctx context.Context, clientKey string) (bool, int, int, time.Time, error) {
		return false, 0, 1, fetchedAt, nil
	}}
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: &tmocks.AggregationServiceMock{}, RateLimiterService: limiter})

	code, env := get(t, ts, "/api/iss")
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "rate limit exceeded", env.Error)
}

func TestHealth_ReportsDependenciesAndUpstreams(t *testing.T) {
	deps := httpserver.ServerDeps{
		AggregationService: &tmocks.AggregationServiceMock{},
		HealthCheckers:     []ports.HealthChecker{&tmocks.HealthCheckerMock{NameValue: "cache:memory"}},
		Upstreams: []ports.UpstreamStatus{
			&tmocks.UpstreamStatusMock{NameValue: "nasa-donki", StateValue: "open"},
			&tmocks.UpstreamStatusMock{NameValue: "spacex", StateValue: "closed"},
		},
	}
	ts := newTestServer(t, deps)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status       string            `json:"status"`
		Service      string            `json:"service"`
		Dependencies map[string]string `json:"dependencies"`
		Upstreams    map[string]string `json:"upstreams"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "SpaceScope API", body.Service)
	assert.Equal(t, map[string]string{"cache:memory": "healthy"}, body.Dependencies)
	assert.Equal(t, map[string]string{"nasa-donki": "open", "spacex": "closed"}, body.Upstreams)
}

func TestHealth_FailingCheckerIsDegraded(t *testing.T) {
	deps := httpserver.ServerDeps{
		AggregationService: &tmocks.AggregationServiceMock{},
		HealthCheckers: []ports.HealthChecker{&tmocks.HealthCheckerMock{NameValue: "redis", CheckFn: func(ctx context.Context) error {
			return errors.New("connection refused")
		}}},
	}
	ts := newTestServer(t, deps)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestIndex_ListsRouteGroups(t *testing.T) {
	ts := newTestServer(t, httpserver.ServerDeps{AggregationService: &tmocks.AggregationServiceMock{}})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1.0.0", body.Version)
	assert.Equal(t, "/api/iss", body.Endpoints["iss"])
	assert.NotContains(t, body.Endpoints, "academy")
}
