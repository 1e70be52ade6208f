package ports

import (
	"context"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
)

// ISSProvider reads the human-spaceflight position/crew service.
type ISSProvider interface {
	FetchPosition(ctx context.Context) fetch.Result[iss.Position]
	FetchCrew(ctx context.Context) fetch.Result[iss.CrewRoster]
}

// DONKIProvider reads NASA's space weather event database.
type DONKIProvider interface {
	FetchCMEs(ctx context.Context, window celestial.DateWindow) fetch.Result[[]celestial.CME]
	FetchFlares(ctx context.Context, window celestial.DateWindow) fetch.Result[[]celestial.SolarFlare]
	FetchStorms(ctx context.Context, window celestial.DateWindow) fetch.Result[[]celestial.GeomagneticStorm]
}

// EONETProvider reads NASA's natural event tracker.
type EONETProvider interface {
	FetchNaturalEvents(ctx context.Context, limit int) fetch.Result[[]celestial.NaturalEvent]
}

// SWPCProvider reads the NOAA Space Weather Prediction Center products.
type SWPCProvider interface {
	FetchKpIndex(ctx context.Context) fetch.Result[weather.KpHistory]
	FetchSolarWind(ctx context.Context) fetch.Result[[]weather.WindSample]
	FetchXrayFlux(ctx context.Context) fetch.Result[float64]
	FetchAlerts(ctx context.Context) fetch.Result[[]weather.Alert]
	FetchScales(ctx context.Context) fetch.Result[weather.RadiationScales]
}

// SpaceXProvider reads the commercial launch provider API.
type SpaceXProvider interface {
	FetchUpcomingLaunches(ctx context.Context) fetch.Result[[]mission.Record]
	FetchPastLaunches(ctx context.Context) fetch.Result[[]mission.Record]
	FetchLaunch(ctx context.Context, id string) fetch.Result[mission.Record]
	FetchRockets(ctx context.Context) fetch.Result[[]mission.Rocket]
}
