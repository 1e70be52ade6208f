package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	naturalEventLimit = 20
	auroraHistoryLen  = 8
)

var cacheLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "spacescope_cache_lookups_total",
		Help: "Cache lookups by category and result",
	},
	[]string{"category", "result"},
)

func init() {
	prometheus.MustRegister(cacheLookups)
}

// Providers groups the upstream adapters the facade reads from.
type Providers struct {
	ISS    ports.ISSProvider
	DONKI  ports.DONKIProvider
	EONET  ports.EONETProvider
	SWPC   ports.SWPCProvider
	SpaceX ports.SpaceXProvider
}

// AggregationService implements ports.AggregationService.
type AggregationService struct {
	providers Providers
	cache     ports.Cache
	resolver  *FallbackResolver
	policies  Policies
	clock     ports.Clock
	validate  *validator.Validate
	sf        singleflight.Group
	logger    *logrus.Logger
}

func NewAggregationService(providers Providers, cache ports.Cache, policies Policies, clock ports.Clock, logger *logrus.Logger) *AggregationService {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &AggregationService{
		providers: providers,
		cache:     cache,
		resolver:  NewFallbackResolver(clock, logger),
		policies:  policies,
		clock:     clock,
		validate:  validator.New(),
		logger:    logger,
	}
}

// cachedResolve is the single-source flow: cache hit, otherwise one
// coalesced live call per key under the fallback policy. Only live values
// are written back.
func cachedResolve[T any](ctx context.Context, s *AggregationService, key string, policy FallbackPolicy[T], live func(ctx context.Context) fetch.Result[T]) ports.Outcome[T] {
	if v, storedAt, ok := cacheGet[T](s.cache, ctx, key); ok {
		cacheLookups.WithLabelValues(policy.Category, "hit").Inc()
		return ports.Outcome[T]{Data: v, Cached: true, FetchedAt: storedAt}
	}
	cacheLookups.WithLabelValues(policy.Category, "miss").Inc()

	// The shared call outlives whichever caller started it; each caller only
	// stops waiting on its own cancellation.
	shared := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(key, func() (any, error) {
		r := Resolve(shared, s.resolver, policy, live)
		if !r.Fallback {
			cacheSetSilently(s.cache, shared, key, r.Value, policy.CacheTTL)
		}
		return r, nil
	})

	var r Resolution[T]
	select {
	case res := <-ch:
		var ok bool
		if r, ok = res.Val.(Resolution[T]); !ok {
			// Another category shared the key; never expected.
			r = synthesize(s.resolver, policy, "internal", fmt.Errorf("unexpected singleflight result %T", res.Val))
		}
	case <-ctx.Done():
		r = synthesize(s.resolver, policy, "canceled", ctx.Err())
	}
	return ports.Outcome[T]{Data: r.Value, Fallback: r.Fallback, FetchedAt: r.RetrievedAt}
}

// errOf returns a Result's error as a plain error, nil on success.
func errOf[T any](r fetch.Result[T]) error {
	if e := r.Err(); e != nil {
		return e
	}
	return nil
}

func (s *AggregationService) GetISSPosition(ctx context.Context) ports.Outcome[iss.Position] {
	return cachedResolve(ctx, s, KeyISSPosition, s.policies.ISSPosition, s.providers.ISS.FetchPosition)
}

func (s *AggregationService) GetCrew(ctx context.Context) ports.Outcome[iss.CrewRoster] {
	return cachedResolve(ctx, s, KeyISSCrew, s.policies.Crew, s.providers.ISS.FetchCrew)
}

// GetISSPasses predicts passes over loc. Predictions are shared by every
// caller within the same rounded location.
func (s *AggregationService) GetISSPasses(ctx context.Context, loc iss.Location) (ports.Outcome[iss.PassPrediction], error) {
	if err := s.validate.Struct(loc); err != nil {
		return ports.Outcome[iss.PassPrediction]{}, fetch.Errorf(fetch.InvalidInput, "invalid location: %v", err)
	}
	rounded := loc.Rounded()
	policy := s.policies.Passes
	policy.Synthetic = func(now time.Time) iss.PassPrediction { return iss.PredictPasses(rounded, now) }
	live := func(context.Context) fetch.Result[iss.PassPrediction] {
		now := s.clock.Now()
		return fetch.Ok(iss.PredictPasses(rounded, now), now)
	}
	return cachedResolve(ctx, s, KeyISSPassesPrefix+rounded.Key(), policy, live), nil
}

// GetCelestialSummary fetches CMEs, flares and storms concurrently. Any failed
// feed fails the whole summary.
func (s *AggregationService) GetCelestialSummary(ctx context.Context) ports.Outcome[celestial.EventSet] {
	return cachedResolve(ctx, s, KeyCelestialSummary, s.policies.Celestial, func(ctx context.Context) fetch.Result[celestial.EventSet] {
		now := s.clock.Now()
		window := celestial.RollingWindow(now)
		var (
			cmes   fetch.Result[[]celestial.CME]
			flares fetch.Result[[]celestial.SolarFlare]
			storms fetch.Result[[]celestial.GeomagneticStorm]
			g      errgroup.Group
		)
		g.Go(func() error { cmes = s.providers.DONKI.FetchCMEs(ctx, window); return errOf(cmes) })
		g.Go(func() error { flares = s.providers.DONKI.FetchFlares(ctx, window); return errOf(flares) })
		g.Go(func() error { storms = s.providers.DONKI.FetchStorms(ctx, window); return errOf(storms) })
		if err := g.Wait(); err != nil {
			return fetch.Fail[celestial.EventSet](asFetchError(err))
		}
		c, _ := cmes.Value()
		f, _ := flares.Value()
		st, _ := storms.Value()
		return fetch.Ok(celestial.EventSet{CoronalMassEjections: c, SolarFlares: f, GeomagneticStorms: st}, s.clock.Now())
	})
}

// GetSkyEvents pairs the curated calendar, evaluated now, with open natural events.
func (s *AggregationService) GetSkyEvents(ctx context.Context) ports.Outcome[celestial.SkyEvents] {
	events := cachedResolve(ctx, s, KeySkyEvents, s.policies.NaturalEvents, func(ctx context.Context) fetch.Result[[]celestial.NaturalEvent] {
		return s.providers.EONET.FetchNaturalEvents(ctx, naturalEventLimit)
	})
	return ports.Outcome[celestial.SkyEvents]{
		Data:      celestial.SkyEvents{SkyEvents: celestial.Calendar(s.clock.Now()), NaturalEvents: events.Data},
		Fallback:  events.Fallback,
		Cached:    events.Cached,
		FetchedAt: events.FetchedAt,
	}
}

func (s *AggregationService) kpIndex(ctx context.Context) ports.Outcome[weather.KpHistory] {
	return cachedResolve(ctx, s, KeyKpIndex, s.policies.KpIndex, s.providers.SWPC.FetchKpIndex)
}

// GetAuroraVisibility evaluates the region table against the current K-index.
func (s *AggregationService) GetAuroraVisibility(ctx context.Context) ports.Outcome[celestial.AuroraReport] {
	kp := s.kpIndex(ctx)
	current := kp.Data.Current
	if current == 0 && !kp.Fallback {
		current = weather.DefaultKp
	}
	return ports.Outcome[celestial.AuroraReport]{
		Data: celestial.AuroraReport{
			KpIndex:    weather.KpHistory{Current: current, Samples: kp.Data.Last(auroraHistoryLen)},
			Visibility: celestial.Visibility(current, celestial.DefaultRegions),
		},
		Fallback:  kp.Fallback,
		Cached:    kp.Cached,
		FetchedAt: kp.FetchedAt,
	}
}

// GetSpaceWeather combines the K-index, solar wind, X-ray flux and alerts.
func (s *AggregationService) GetSpaceWeather(ctx context.Context) ports.Outcome[weather.Snapshot] {
	return cachedResolve(ctx, s, KeySpaceWeather, s.policies.Weather, func(ctx context.Context) fetch.Result[weather.Snapshot] {
		var (
			kp     fetch.Result[weather.KpHistory]
			wind   fetch.Result[[]weather.WindSample]
			xray   fetch.Result[float64]
			alerts fetch.Result[[]weather.Alert]
			g      errgroup.Group
		)
		g.Go(func() error { kp = s.providers.SWPC.FetchKpIndex(ctx); return errOf(kp) })
		g.Go(func() error { wind = s.providers.SWPC.FetchSolarWind(ctx); return errOf(wind) })
		g.Go(func() error { xray = s.providers.SWPC.FetchXrayFlux(ctx); return errOf(xray) })
		g.Go(func() error { alerts = s.providers.SWPC.FetchAlerts(ctx); return errOf(alerts) })
		if err := g.Wait(); err != nil {
			return fetch.Fail[weather.Snapshot](asFetchError(err))
		}
		k, _ := kp.Value()
		w, _ := wind.Value()
		x, _ := xray.Value()
		a, _ := alerts.Value()
		return fetch.Ok(weather.BuildSnapshot(k, w, x, a), s.clock.Now())
	})
}

func (s *AggregationService) GetRadiation(ctx context.Context) ports.Outcome[weather.RadiationScales] {
	return cachedResolve(ctx, s, KeyRadiation, s.policies.Radiation, s.providers.SWPC.FetchScales)
}

// GetSolarImagery returns the fixed observatory image URLs.
func (s *AggregationService) GetSolarImagery(context.Context) ports.Outcome[weather.Imagery] {
	return ports.Outcome[weather.Imagery]{Data: weather.DefaultImagery(), FetchedAt: s.clock.Now()}
}

// GetMissions merges recent and upcoming SpaceX launches with the NASA catalogue.
func (s *AggregationService) GetMissions(ctx context.Context) ports.Outcome[mission.Catalog] {
	return cachedResolve(ctx, s, KeyMissions, s.policies.Missions, func(ctx context.Context) fetch.Result[mission.Catalog] {
		var (
			upcoming fetch.Result[[]mission.Record]
			past     fetch.Result[[]mission.Record]
			g        errgroup.Group
		)
		g.Go(func() error { upcoming = s.providers.SpaceX.FetchUpcomingLaunches(ctx); return errOf(upcoming) })
		g.Go(func() error { past = s.providers.SpaceX.FetchPastLaunches(ctx); return errOf(past) })
		if err := g.Wait(); err != nil {
			return fetch.Fail[mission.Catalog](asFetchError(err))
		}
		u, _ := upcoming.Value()
		p, _ := past.Value()
		spacex := make([]mission.Record, 0, len(u)+len(p))
		spacex = append(spacex, u...)
		spacex = append(spacex, p...)
		return fetch.Ok(mission.Combine(spacex, mission.NASAMissions()), s.clock.Now())
	})
}

// GetMissionByID looks in the NASA catalogue first, then SpaceX. Any SpaceX
// failure is reported as NotFound.
func (s *AggregationService) GetMissionByID(ctx context.Context, id string) (ports.Outcome[mission.Record], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ports.Outcome[mission.Record]{}, fetch.Errorf(fetch.InvalidInput, "mission id is required")
	}
	if rec, ok := mission.FindNASA(id); ok {
		return ports.Outcome[mission.Record]{Data: rec, FetchedAt: s.clock.Now()}, nil
	}

	callCtx := ctx
	if t := s.policies.Missions.Timeout; t > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	res := s.providers.SpaceX.FetchLaunch(callCtx, id)
	if !res.IsOk() {
		if s.logger != nil && !fetch.IsKind(res.Err(), fetch.NotFound) {
			s.logger.WithFields(logrus.Fields{"mission_id": id}).WithError(res.Err()).Warn("mission lookup failed")
		}
		return ports.Outcome[mission.Record]{}, fetch.Errorf(fetch.NotFound, "Mission not found")
	}
	rec, at := res.Value()
	return ports.Outcome[mission.Record]{Data: rec, FetchedAt: at}, nil
}

func (s *AggregationService) GetRockets(ctx context.Context) ports.Outcome[[]mission.Rocket] {
	return cachedResolve(ctx, s, KeyRockets, s.policies.Rockets, s.providers.SpaceX.FetchRockets)
}

func asFetchError(err error) *fetch.Error {
	var fe *fetch.Error
	if errors.As(err, &fe) {
		return fe
	}
	return fetch.Errorf(fetch.NetworkFailure, "%v", err)
}
