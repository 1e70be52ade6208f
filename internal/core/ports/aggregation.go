package ports

import (
	"context"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
)

// Outcome is the answer to one capability call. Data always has the same
// shape whether it came from a provider, the cache or a fallback generator.
type Outcome[T any] struct {
	Data      T
	Fallback  bool
	Cached    bool
	FetchedAt time.Time
}

// AggregationService is the boundary the HTTP layer (or any other caller) uses.
// Methods without an error return are total: upstream failures are replaced by fallback data.
type AggregationService interface {
	GetISSPosition(ctx context.Context) Outcome[iss.Position]
	GetCrew(ctx context.Context) Outcome[iss.CrewRoster]
	// GetISSPasses fails only with an InvalidInput error.
	GetISSPasses(ctx context.Context, loc iss.Location) (Outcome[iss.PassPrediction], error)
	GetCelestialSummary(ctx context.Context) Outcome[celestial.EventSet]
	GetSkyEvents(ctx context.Context) Outcome[celestial.SkyEvents]
	GetAuroraVisibility(ctx context.Context) Outcome[celestial.AuroraReport]
	GetSpaceWeather(ctx context.Context) Outcome[weather.Snapshot]
	GetRadiation(ctx context.Context) Outcome[weather.RadiationScales]
	GetSolarImagery(ctx context.Context) Outcome[weather.Imagery]
	GetMissions(ctx context.Context) Outcome[mission.Catalog]
	// GetMissionByID fails with NotFound or InvalidInput errors.
	GetMissionByID(ctx context.Context, id string) (Outcome[mission.Record], error)
	GetRockets(ctx context.Context) Outcome[[]mission.Rocket]
}
