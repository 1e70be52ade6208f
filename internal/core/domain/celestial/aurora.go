package celestial

import "github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"

// Region is a place where aurora becomes visible once the K-index reaches MinKp.
type Region struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	MinKp float64 `json:"minKp"`
}

// AuroraRegion is a Region evaluated against a K-index.
type AuroraRegion struct {
	Region
	Visible   bool    `json:"visible"`
	Intensity float64 `json:"intensity"`
}

// AuroraReport is the aurora visibility table with the K-index it was computed from.
type AuroraReport struct {
	KpIndex    weather.KpHistory `json:"kpIndex"`
	Visibility []AuroraRegion    `json:"visibility"`
}

// DefaultRegions is the fixed visibility table.
var DefaultRegions = []Region{
	{Name: "Alaska", Lat: 65, Lon: -150, MinKp: 2},
	{Name: "Norway", Lat: 70, Lon: 20, MinKp: 2},
	{Name: "Iceland", Lat: 65, Lon: -18, MinKp: 3},
	{Name: "Canada", Lat: 60, Lon: -100, MinKp: 4},
	{Name: "Scotland", Lat: 57, Lon: -4, MinKp: 5},
	{Name: "Northern US", Lat: 48, Lon: -95, MinKp: 6},
}

// Visibility evaluates every region against kp.
func Visibility(kp float64, regions []Region) []AuroraRegion {
	out := make([]AuroraRegion, 0, len(regions))
	for _, r := range regions {
		out = append(out, AuroraRegion{
			Region:    r,
			Visible:   kp >= r.MinKp,
			Intensity: clamp01((kp - r.MinKp + 1) / 3),
		})
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
