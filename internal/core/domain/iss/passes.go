package iss

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// OrbitPeriod is the approximate time for one ISS revolution.
const OrbitPeriod = 92 * time.Minute

const passCount = 5

var (
	passNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://spacescope/iss/passes"))
	directions    = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
)

// Pass is one predicted visible overflight.
type Pass struct {
	ID           string `json:"id"`
	RiseTime     int64  `json:"risetime"`
	RiseTimeISO  string `json:"risetimeISO"`
	Duration     int    `json:"duration"`
	MaxElevation int    `json:"maxElevation"`
	Direction    string `json:"direction"`
}

// PassPrediction is the set of upcoming passes for an observer.
type PassPrediction struct {
	Location Location `json:"location"`
	Passes   []Pass   `json:"passes"`
}

// Rounded snaps a location to one decimal place (about 11 km), the
// granularity at which predictions are shared.
func (l Location) Rounded() Location {
	return Location{
		Latitude:  math.Round(l.Latitude*10) / 10,
		Longitude: math.Round(l.Longitude*10) / 10,
	}
}

// Key is the canonical string form of the rounded location.
func (l Location) Key() string {
	r := l.Rounded()
	return fmt.Sprintf("%.1f:%.1f", r.Latitude, r.Longitude)
}

// PredictPasses approximates the next passes over loc, one per orbit.
// The jitter on each pass comes from a name-based UUID of the rounded location
// and the orbit slot, so the same inputs always give the same prediction.
func PredictPasses(loc Location, now time.Time) PassPrediction {
	slot := now.Unix() / int64(OrbitPeriod/time.Second)
	seed := uuid.NewSHA1(passNamespace, []byte(fmt.Sprintf("%s:%d", loc.Key(), slot)))

	passes := make([]Pass, 0, passCount)
	for i := 0; i < passCount; i++ {
		b0, b1, b2 := seed[i*3], seed[i*3+1], seed[i*3+2]
		offset := time.Duration(i)*OrbitPeriod + time.Duration(int(b0)%30)*time.Minute
		rise := now.Add(offset).UTC().Truncate(time.Second)
		passes = append(passes, Pass{
			ID:           uuid.NewSHA1(seed, []byte{byte(i)}).String(),
			RiseTime:     rise.Unix(),
			RiseTimeISO:  rise.Format(time.RFC3339),
			Duration:     (3 + int(b1)%5) * 60,
			MaxElevation: 20 + int(b2)%61,
			Direction:    directions[int(b0^b1^b2)%len(directions)],
		})
	}
	return PassPrediction{Location: loc, Passes: passes}
}
