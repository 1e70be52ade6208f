package iss

// The position provider reports only coordinates; altitude and velocity are
// fixed averages for the station.
const (
	AltitudeKm  = 420.0
	VelocityKmh = 27600.0
)

// Position is the current ground-track point of the ISS.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Velocity  float64 `json:"velocity"`
	Timestamp int64   `json:"timestamp"`
}

// NewPosition fills in the fixed altitude and velocity.
func NewPosition(lat, lon float64, timestamp int64) Position {
	return Position{
		Latitude:  lat,
		Longitude: lon,
		Altitude:  AltitudeKm,
		Velocity:  VelocityKmh,
		Timestamp: timestamp,
	}
}

type Astronaut struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

// CrewRoster lists the people currently in space.
type CrewRoster struct {
	Count  int         `json:"count"`
	People []Astronaut `json:"people"`
}

// Location is an observer position on the ground.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// DefaultLocation is used when a caller omits coordinates (New York City).
var DefaultLocation = Location{Latitude: 40.7128, Longitude: -74.0060}
