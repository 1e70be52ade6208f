package services

import (
	"math"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
)

// Synthetic generators. Each is a pure function of the instant it is asked for.

// SyntheticISSPosition follows a sinusoidal ground track: latitude swings
// within ±30° with a 10 s time constant and longitude sweeps one degree per second.
func SyntheticISSPosition(now time.Time) iss.Position {
	ms := float64(now.UnixMilli())
	lat := 30 * math.Sin(ms/10000)
	lon := math.Mod(ms/1000, 360) - 180
	return iss.NewPosition(lat, lon, now.Unix())
}

var fallbackCrew = []iss.Astronaut{
	{Name: "Oleg Kononenko", Craft: "ISS"},
	{Name: "Nikolai Chub", Craft: "ISS"},
	{Name: "Tracy Dyson", Craft: "ISS"},
	{Name: "Matthew Dominick", Craft: "ISS"},
	{Name: "Michael Barratt", Craft: "ISS"},
	{Name: "Jeanette Epps", Craft: "ISS"},
	{Name: "Alexander Grebenkin", Craft: "ISS"},
}

func SyntheticCrew(time.Time) iss.CrewRoster {
	people := append([]iss.Astronaut(nil), fallbackCrew...)
	return iss.CrewRoster{Count: len(people), People: people}
}

func SyntheticCelestialSummary(time.Time) celestial.EventSet {
	return celestial.EventSet{
		CoronalMassEjections: []celestial.CME{{ActivityID: "CME-001", StartTime: "2026-01-14T08:00Z", Note: "Halo CME detected"}},
		SolarFlares:          []celestial.SolarFlare{{FlrID: "FLR-001", BeginTime: "2026-01-13T14:30Z", ClassType: "M2.5"}},
		GeomagneticStorms:    []celestial.GeomagneticStorm{},
	}
}

func SyntheticNaturalEvents(time.Time) []celestial.NaturalEvent {
	return []celestial.NaturalEvent{}
}

// FallbackKp is the K-index assumed when the live feed is unavailable.
const FallbackKp = 3.0

func SyntheticKpHistory(time.Time) weather.KpHistory {
	return weather.KpHistory{Current: FallbackKp, Samples: []weather.KpSample{}}
}

func SyntheticSpaceWeather(time.Time) weather.Snapshot {
	return weather.Snapshot{
		KpIndex: weather.KpIndex{
			Current: FallbackKp,
			Level:   weather.LevelForKp(FallbackKp),
			History: []weather.KpSample{},
		},
		SolarWind: weather.SolarWind{Speed: 420, Density: 5, History: []weather.WindSample{}},
		XrayFlux:  weather.XrayFlux{Current: 1e-7, Level: weather.XrayClass(1e-7)},
		Alerts:    []weather.Alert{},
		Summary:   weather.Summarize(FallbackKp, 420),
	}
}

func SyntheticRadiation(time.Time) weather.RadiationScales {
	none := weather.Scale{Scale: 0, Text: "None"}
	return weather.RadiationScales{R: none, S: none, G: none}
}

func SyntheticMissions(time.Time) mission.Catalog {
	return mission.Combine(nil, mission.NASAMissions())
}

func SyntheticRockets(time.Time) []mission.Rocket {
	return mission.KnownRockets()
}
