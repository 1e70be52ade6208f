package services

import (
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
)

// Cache keys, one per category.
const (
	KeyISSPosition      = "iss-position"
	KeyISSCrew          = "iss-crew"
	KeyISSPassesPrefix  = "iss-passes:"
	KeyCelestialSummary = "celestial-summary"
	KeySkyEvents        = "sky-events"
	KeyKpIndex          = "kp-index"
	KeySpaceWeather     = "space-weather"
	KeyRadiation        = "radiation"
	KeyMissions         = "missions"
	KeyRockets          = "rockets"
)

// CacheTTLs holds how long each category's live data is reused.
type CacheTTLs struct {
	ISSPosition   time.Duration
	Crew          time.Duration
	Passes        time.Duration
	Celestial     time.Duration
	NaturalEvents time.Duration
	KpIndex       time.Duration
	Weather       time.Duration
	Radiation     time.Duration
	Missions      time.Duration
	Rockets       time.Duration
}

// FallbackTimeouts holds how long each category waits for live data.
type FallbackTimeouts struct {
	ISS       time.Duration
	Crew      time.Duration
	Celestial time.Duration
	Events    time.Duration
	Weather   time.Duration
	Radiation time.Duration
	Missions  time.Duration
	Rockets   time.Duration
}

// DefaultCacheTTLs mirrors the refresh rates of the upstream feeds.
var DefaultCacheTTLs = CacheTTLs{
	ISSPosition:   5 * time.Second,
	Crew:          5 * time.Minute,
	Passes:        10 * time.Minute,
	Celestial:     15 * time.Minute,
	NaturalEvents: 10 * time.Minute,
	KpIndex:       time.Minute,
	Weather:       time.Minute,
	Radiation:     5 * time.Minute,
	Missions:      10 * time.Minute,
	Rockets:       time.Hour,
}

var DefaultFallbackTimeouts = FallbackTimeouts{
	ISS:       2 * time.Second,
	Crew:      4 * time.Second,
	Celestial: 8 * time.Second,
	Events:    6 * time.Second,
	Weather:   8 * time.Second,
	Radiation: 4 * time.Second,
	Missions:  8 * time.Second,
	Rockets:   6 * time.Second,
}

// Policies is the full set of per-category fallback policies.
type Policies struct {
	ISSPosition   FallbackPolicy[iss.Position]
	Crew          FallbackPolicy[iss.CrewRoster]
	Passes        FallbackPolicy[iss.PassPrediction]
	Celestial     FallbackPolicy[celestial.EventSet]
	NaturalEvents FallbackPolicy[[]celestial.NaturalEvent]
	KpIndex       FallbackPolicy[weather.KpHistory]
	Weather       FallbackPolicy[weather.Snapshot]
	Radiation     FallbackPolicy[weather.RadiationScales]
	Missions      FallbackPolicy[mission.Catalog]
	Rockets       FallbackPolicy[[]mission.Rocket]
}

// DefaultPolicies builds the policies from the configured TTLs and timeouts.
// Zero values fall back to the package defaults.
func DefaultPolicies(ttls CacheTTLs, timeouts FallbackTimeouts) Policies {
	ttls = ttls.withDefaults()
	timeouts = timeouts.withDefaults()
	return Policies{
		ISSPosition:   FallbackPolicy[iss.Position]{Category: "iss-position", Timeout: timeouts.ISS, CacheTTL: ttls.ISSPosition, Synthetic: SyntheticISSPosition},
		Crew:          FallbackPolicy[iss.CrewRoster]{Category: "iss-crew", Timeout: timeouts.Crew, CacheTTL: ttls.Crew, Synthetic: SyntheticCrew},
		Passes:        FallbackPolicy[iss.PassPrediction]{Category: "iss-passes", CacheTTL: ttls.Passes},
		Celestial:     FallbackPolicy[celestial.EventSet]{Category: "celestial-summary", Timeout: timeouts.Celestial, CacheTTL: ttls.Celestial, Synthetic: SyntheticCelestialSummary},
		NaturalEvents: FallbackPolicy[[]celestial.NaturalEvent]{Category: "sky-events", Timeout: timeouts.Events, CacheTTL: ttls.NaturalEvents, Synthetic: SyntheticNaturalEvents},
		KpIndex:       FallbackPolicy[weather.KpHistory]{Category: "kp-index", Timeout: timeouts.Weather, CacheTTL: ttls.KpIndex, Synthetic: SyntheticKpHistory},
		Weather:       FallbackPolicy[weather.Snapshot]{Category: "space-weather", Timeout: timeouts.Weather, CacheTTL: ttls.Weather, Synthetic: SyntheticSpaceWeather},
		Radiation:     FallbackPolicy[weather.RadiationScales]{Category: "radiation", Timeout: timeouts.Radiation, CacheTTL: ttls.Radiation, Synthetic: SyntheticRadiation},
		Missions:      FallbackPolicy[mission.Catalog]{Category: "missions", Timeout: timeouts.Missions, CacheTTL: ttls.Missions, Synthetic: SyntheticMissions},
		Rockets:       FallbackPolicy[[]mission.Rocket]{Category: "rockets", Timeout: timeouts.Rockets, CacheTTL: ttls.Rockets, Synthetic: SyntheticRockets},
	}
}

func orDefault(v, d time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return d
}

func (t CacheTTLs) withDefaults() CacheTTLs {
	d := DefaultCacheTTLs
	return CacheTTLs{
		ISSPosition:   orDefault(t.ISSPosition, d.ISSPosition),
		Crew:          orDefault(t.Crew, d.Crew),
		Passes:        orDefault(t.Passes, d.Passes),
		Celestial:     orDefault(t.Celestial, d.Celestial),
		NaturalEvents: orDefault(t.NaturalEvents, d.NaturalEvents),
		KpIndex:       orDefault(t.KpIndex, d.KpIndex),
		Weather:       orDefault(t.Weather, d.Weather),
		Radiation:     orDefault(t.Radiation, d.Radiation),
		Missions:      orDefault(t.Missions, d.Missions),
		Rockets:       orDefault(t.Rockets, d.Rockets),
	}
}

func (t FallbackTimeouts) withDefaults() FallbackTimeouts {
	d := DefaultFallbackTimeouts
	return FallbackTimeouts{
		ISS:       orDefault(t.ISS, d.ISS),
		Crew:      orDefault(t.Crew, d.Crew),
		Celestial: orDefault(t.Celestial, d.Celestial),
		Events:    orDefault(t.Events, d.Events),
		Weather:   orDefault(t.Weather, d.Weather),
		Radiation: orDefault(t.Radiation, d.Radiation),
		Missions:  orDefault(t.Missions, d.Missions),
		Rockets:   orDefault(t.Rockets, d.Rockets),
	}
}
