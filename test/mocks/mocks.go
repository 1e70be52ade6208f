package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
)

// unavailable is what an unset mock method answers.
func unavailable[T any]() fetch.Result[T] {
	return fetch.FailWith[T](fetch.NetworkFailure, "mock: not configured")
}

// ISSProviderMock is a lightweight mock for ISSProvider
type ISSProviderMock struct {
	FetchPositionFn func(ctx context.Context) fetch.Result[iss.Position]
	FetchCrewFn     func(ctx context.Context) fetch.Result[iss.CrewRoster]
}

func (m *ISSProviderMock) FetchPosition(ctx context.Context) fetch.Result[iss.Position] {
	if m.FetchPositionFn != nil {
		return m.FetchPositionFn(ctx)
	}
	return unavailable[iss.Position]()
}
func (m *ISSProviderMock) FetchCrew(ctx context.Context) fetch.Result[iss.CrewRoster] {
	if m.FetchCrewFn != nil {
		return m.FetchCrewFn(ctx)
	}
	return unavailable[iss.CrewRoster]()
}

// DONKIProviderMock is a lightweight mock for DONKIProvider
type DONKIProviderMock struct {
	FetchCMEsFn   func(ctx context.Context, w celestial.DateWindow) fetch.Result[[]celestial.CME]
	FetchFlaresFn func(ctx context.Context, w celestial.DateWindow) fetch.Result[[]celestial.SolarFlare]
	FetchStormsFn func(ctx context.Context, w celestial.DateWindow) fetch.Result[[]celestial.GeomagneticStorm]
}

func (m *DONKIProviderMock) FetchCMEs(ctx context.Context, w celestial.DateWindow) fetch.Result[[]celestial.CME] {
	if m.FetchCMEsFn != nil {
		return m.FetchCMEsFn(ctx, w)
	}
	return unavailable[[]celestial.CME]()
}
func (m *DONKIProviderMock) FetchFlares(ctx context.Context, w celestial.DateWindow) fetch.Result[[]celestial.SolarFlare] {
	if m.FetchFlaresFn != nil {
		return m.FetchFlaresFn(ctx, w)
	}
	return unavailable[[]celestial.SolarFlare]()
}
func (m *DONKIProviderMock) FetchStorms(ctx context.Context, w celestial.DateWindow) fetch.Result[[]celestial.GeomagneticStorm] {
	if m.FetchStormsFn != nil {
		return m.FetchStormsFn(ctx, w)
	}
	return unavailable[[]celestial.GeomagneticStorm]()
}

// EONETProviderMock is a lightweight mock for EONETProvider
type EONETProviderMock struct {
	FetchNaturalEventsFn func(ctx context.Context, limit int) fetch.Result[[]celestial.NaturalEvent]
}

func (m *EONETProviderMock) FetchNaturalEvents(ctx context.Context, limit int) fetch.Result[[]celestial.NaturalEvent] {
	if m.FetchNaturalEventsFn != nil {
		return m.FetchNaturalEventsFn(ctx, limit)
	}
	return unavailable[[]celestial.NaturalEvent]()
}

// SWPCProviderMock is a lightweight mock for SWPCProvider
type SWPCProviderMock struct {
	FetchKpIndexFn   func(ctx context.Context) fetch.Result[weather.KpHistory]
	FetchSolarWindFn func(ctx context.Context) fetch.Result[[]weather.WindSample]
	FetchXrayFluxFn  func(ctx context.Context) fetch.Result[float64]
	FetchAlertsFn    func(ctx context.Context) fetch.Result[[]weather.Alert]
	FetchScalesFn    func(ctx context.Context) fetch.Result[weather.RadiationScales]
}

func (m *SWPCProviderMock) FetchKpIndex(ctx context.Context) fetch.Result[weather.KpHistory] {
	if m.FetchKpIndexFn != nil {
		return m.FetchKpIndexFn(ctx)
	}
	return unavailable[weather.KpHistory]()
}
func (m *SWPCProviderMock) FetchSolarWind(ctx context.Context) fetch.Result[[]weather.WindSample] {
	if m.FetchSolarWindFn != nil {
		return m.FetchSolarWindFn(ctx)
	}
	return unavailable[[]weather.WindSample]()
}
func (m *SWPCProviderMock) FetchXrayFlux(ctx context.Context) fetch.Result[float64] {
	if m.FetchXrayFluxFn != nil {
		return m.FetchXrayFluxFn(ctx)
	}
	return unavailable[float64]()
}
func (m *SWPCProviderMock) FetchAlerts(ctx context.Context) fetch.Result[[]weather.Alert] {
	if m.FetchAlertsFn != nil {
		return m.FetchAlertsFn(ctx)
	}
	return unavailable[[]weather.Alert]()
}
func (m *SWPCProviderMock) FetchScales(ctx context.Context) fetch.Result[weather.RadiationScales] {
	if m.FetchScalesFn != nil {
		return m.FetchScalesFn(ctx)
	}
	return unavailable[weather.RadiationScales]()
}

// SpaceXProviderMock is a lightweight mock for SpaceXProvider
type SpaceXProviderMock struct {
	FetchUpcomingLaunchesFn func(ctx context.Context) fetch.Result[[]mission.Record]
	FetchPastLaunchesFn     func(ctx context.Context) fetch.Result[[]mission.Record]
	FetchLaunchFn           func(ctx context.Context, id string) fetch.Result[mission.Record]
	FetchRocketsFn          func(ctx context.Context) fetch.Result[[]mission.Rocket]
}

func (m *SpaceXProviderMock) FetchUpcomingLaunches(ctx context.Context) fetch.Result[[]mission.Record] {
	if m.FetchUpcomingLaunchesFn != nil {
		return m.FetchUpcomingLaunchesFn(ctx)
	}
	return unavailable[[]mission.Record]()
}
func (m *SpaceXProviderMock) FetchPastLaunches(ctx context.Context) fetch.Result[[]mission.Record] {
	if m.FetchPastLaunchesFn != nil {
		return m.FetchPastLaunchesFn(ctx)
	}
	return unavailable[[]mission.Record]()
}
func (m *SpaceXProviderMock) FetchLaunch(ctx context.Context, id string) fetch.Result[mission.Record] {
	if m.FetchLaunchFn != nil {
		return m.FetchLaunchFn(ctx, id)
	}
	return fetch.FailWith[mission.Record](fetch.NotFound, "mock: not configured")
}
func (m *SpaceXProviderMock) FetchRockets(ctx context.Context) fetch.Result[[]mission.Rocket] {
	if m.FetchRocketsFn != nil {
		return m.FetchRocketsFn(ctx)
	}
	return unavailable[[]mission.Rocket]()
}

// RateLimiterServiceMock is a lightweight mock for RateLimiterService
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, clientKey string) (bool, int, int, time.Time, error)
}

func (m *RateLimiterServiceMock) Allow(ctx context.Context, clientKey string) (bool, int, int, time.Time, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, clientKey)
	}
	return true, 0, 0, time.Time{}, nil
}

// CacheMock is an in-memory Cache that records writes and can be made to fail.
type CacheMock struct {
	mu      sync.Mutex
	Entries map[string]ports.CacheEntry
	Sets    []string
	GetErr  error
	Now     func() time.Time
}

func NewCacheMock(now func() time.Time) *CacheMock {
	return &CacheMock{Entries: make(map[string]ports.CacheEntry), Now: now}
}

func (m *CacheMock) Get(_ context.Context, key string) (ports.CacheEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return ports.CacheEntry{}, false, m.GetErr
	}
	e, ok := m.Entries[key]
	if !ok || !e.Fresh(m.Now()) {
		return ports.CacheEntry{}, false, nil
	}
	return e, true, nil
}

func (m *CacheMock) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries[key] = ports.CacheEntry{Value: append([]byte(nil), value...), StoredAt: m.Now(), TTL: ttl}
	m.Sets = append(m.Sets, key)
	return nil
}

// SetCount returns how many writes were made to key.
func (m *CacheMock) SetCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, k := range m.Sets {
		if k == key {
			n++
		}
	}
	return n
}

// HealthCheckerMock is a lightweight mock for HealthChecker
type HealthCheckerMock struct {
	NameValue string
	CheckFn   func(ctx context.Context) error
}

func (m *HealthCheckerMock) Name() string { return m.NameValue }
func (m *HealthCheckerMock) Check(ctx context.Context) error {
	if m.CheckFn != nil {
		return m.CheckFn(ctx)
	}
	return nil
}

// UpstreamStatusMock reports a fixed breaker state.
type UpstreamStatusMock struct {
	NameValue  string
	StateValue string
}

func (m *UpstreamStatusMock) Name() string  { return m.NameValue }
func (m *UpstreamStatusMock) State() string { return m.StateValue }

// AggregationServiceMock is a lightweight mock for AggregationService.
// Unset methods answer an empty, non-fallback outcome.
type AggregationServiceMock struct {
	GetISSPositionFn      func(ctx context.Context) ports.Outcome[iss.Position]
	GetCrewFn             func(ctx context.Context) ports.Outcome[iss.CrewRoster]
	GetISSPassesFn        func(ctx context.Context, loc iss.Location) (ports.Outcome[iss.PassPrediction], error)
	GetCelestialSummaryFn func(ctx context.Context) ports.Outcome[celestial.EventSet]
	GetSkyEventsFn        func(ctx context.Context) ports.Outcome[celestial.SkyEvents]
	GetAuroraVisibilityFn func(ctx context.Context) ports.Outcome[celestial.AuroraReport]
	GetSpaceWeatherFn     func(ctx context.Context) ports.Outcome[weather.Snapshot]
	GetRadiationFn        func(ctx context.Context) ports.Outcome[weather.RadiationScales]
	GetSolarImageryFn     func(ctx context.Context) ports.Outcome[weather.Imagery]
	GetMissionsFn         func(ctx context.Context) ports.Outcome[mission.Catalog]
	GetMissionByIDFn      func(ctx context.Context, id string) (ports.Outcome[mission.Record], error)
	GetRocketsFn          func(ctx context.Context) ports.Outcome[[]mission.Rocket]
}

func (m *AggregationServiceMock) GetISSPosition(ctx context.Context) ports.Outcome[iss.Position] {
	if m.GetISSPositionFn != nil {
		return m.GetISSPositionFn(ctx)
	}
	return ports.Outcome[iss.Position]{}
}
func (m *AggregationServiceMock) GetCrew(ctx context.Context) ports.Outcome[iss.CrewRoster] {
	if m.GetCrewFn != nil {
		return m.GetCrewFn(ctx)
	}
	return ports.Outcome[iss.CrewRoster]{}
}
func (m *AggregationServiceMock) GetISSPasses(ctx context.Context, loc iss.Location) (ports.Outcome[iss.PassPrediction], error) {
	if m.GetISSPassesFn != nil {
		return m.GetISSPassesFn(ctx, loc)
	}
	return ports.Outcome[iss.PassPrediction]{}, nil
}
func (m *AggregationServiceMock) GetCelestialSummary(ctx context.Context) ports.Outcome[celestial.EventSet] {
	if m.GetCelestialSummaryFn != nil {
		return m.GetCelestialSummaryFn(ctx)
	}
	return ports.Outcome[celestial.EventSet]{}
}
func (m *AggregationServiceMock) GetSkyEvents(ctx context.Context) ports.Outcome[celestial.SkyEvents] {
	if m.GetSkyEventsFn != nil {
		return m.GetSkyEventsFn(ctx)
	}
	return ports.Outcome[celestial.SkyEvents]{}
}
func (m *AggregationServiceMock) GetAuroraVisibility(ctx context.Context) ports.Outcome[celestial.AuroraReport] {
	if m.GetAuroraVisibilityFn != nil {
		return m.GetAuroraVisibilityFn(ctx)
	}
	return ports.Outcome[celestial.AuroraReport]{}
}
func (m *AggregationServiceMock) GetSpaceWeather(ctx context.Context) ports.Outcome[weather.Snapshot] {
	if m.GetSpaceWeatherFn != nil {
		return m.GetSpaceWeatherFn(ctx)
	}
	return ports.Outcome[weather.Snapshot]{}
}
func (m *AggregationServiceMock) GetRadiation(ctx context.Context) ports.Outcome[weather.RadiationScales] {
	if m.GetRadiationFn != nil {
		return m.GetRadiationFn(ctx)
	}
	return ports.Outcome[weather.RadiationScales]{}
}
func (m *AggregationServiceMock) GetSolarImagery(ctx context.Context) ports.Outcome[weather.Imagery] {
	if m.GetSolarImageryFn != nil {
		return m.GetSolarImageryFn(ctx)
	}
	return ports.Outcome[weather.Imagery]{}
}
func (m *AggregationServiceMock) GetMissions(ctx context.Context) ports.Outcome[mission.Catalog] {
	if m.GetMissionsFn != nil {
		return m.GetMissionsFn(ctx)
	}
	return ports.Outcome[mission.Catalog]{}
}
func (m *AggregationServiceMock) GetMissionByID(ctx context.Context, id string) (ports.Outcome[mission.Record], error) {
	if m.GetMissionByIDFn != nil {
		return m.GetMissionByIDFn(ctx, id)
	}
	return ports.Outcome[mission.Record]{}, nil
}
func (m *AggregationServiceMock) GetRockets(ctx context.Context) ports.Outcome[[]mission.Rocket] {
	if m.GetRocketsFn != nil {
		return m.GetRocketsFn(ctx)
	}
	return ports.Outcome[[]mission.Rocket]{}
}
