package weather

import (
	"fmt"
	"math"
)

// KpSample is one planetary K-index reading.
type KpSample struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// KpHistory is the normalized K-index feed.
type KpHistory struct {
	Current float64    `json:"current"`
	Samples []KpSample `json:"history"`
}

// Last returns at most the n most recent samples.
func (h KpHistory) Last(n int) []KpSample {
	if n <= 0 || len(h.Samples) == 0 {
		return []KpSample{}
	}
	if len(h.Samples) <= n {
		return append([]KpSample(nil), h.Samples...)
	}
	return append([]KpSample(nil), h.Samples[len(h.Samples)-n:]...)
}

type KpLevel struct {
	Level       string `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// LevelForKp maps a K-index to the NOAA G-scale wording.
func LevelForKp(kp float64) KpLevel {
	switch {
	case kp >= 8:
		return KpLevel{Level: "extreme", Color: "#ff0000", Description: "Extreme Storm"}
	case kp >= 7:
		return KpLevel{Level: "severe", Color: "#ff4400", Description: "Severe Storm"}
	case kp >= 6:
		return KpLevel{Level: "strong", Color: "#ff8800", Description: "Strong Storm"}
	case kp >= 5:
		return KpLevel{Level: "moderate", Color: "#ffcc00", Description: "Moderate Storm"}
	case kp >= 4:
		return KpLevel{Level: "minor", Color: "#ffff00", Description: "Minor Storm"}
	default:
		return KpLevel{Level: "quiet", Color: "#00ff00", Description: "Quiet"}
	}
}

type KpIndex struct {
	Current float64    `json:"current"`
	Level   KpLevel    `json:"level"`
	History []KpSample `json:"history"`
}

// WindSample is one solar wind plasma reading. Missing values are 0.
type WindSample struct {
	Time        string  `json:"time"`
	Density     float64 `json:"density"`
	Speed       float64 `json:"speed"`
	Temperature float64 `json:"temperature"`
}

type SolarWind struct {
	Speed   float64      `json:"speed"`
	Density float64      `json:"density"`
	History []WindSample `json:"history"`
}

type XrayFlux struct {
	Current float64 `json:"current"`
	Level   string  `json:"level"`
}

// XrayClass returns the flare class for a long-channel X-ray flux in W/m².
func XrayClass(flux float64) string {
	switch {
	case flux >= 1e-4:
		return "X-class (Extreme)"
	case flux >= 1e-5:
		return "M-class (Strong)"
	case flux >= 1e-6:
		return "C-class (Moderate)"
	case flux >= 1e-7:
		return "B-class (Low)"
	default:
		return "A-class (Minimal)"
	}
}

type Alert struct {
	IssueTime string `json:"issueTime"`
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

// Snapshot is the combined space-weather view.
type Snapshot struct {
	KpIndex   KpIndex   `json:"kpIndex"`
	SolarWind SolarWind `json:"solarWind"`
	XrayFlux  XrayFlux  `json:"xrayFlux"`
	Alerts    []Alert   `json:"alerts"`
	Summary   []string  `json:"summary"`
}

// Defaults applied when a feed has no usable latest value.
const (
	DefaultKp          = 2.0
	DefaultWindSpeed   = 400.0
	DefaultWindDensity = 5.0

	kpHistoryLen   = 24
	windHistoryLen = 20
	maxAlerts      = 10
)

// BuildSnapshot assembles a Snapshot from the individual feeds.
func BuildSnapshot(kp KpHistory, wind []WindSample, xray float64, alerts []Alert) Snapshot {
	current := kp.Current
	if current == 0 {
		current = DefaultKp
	}

	speed, density := DefaultWindSpeed, DefaultWindDensity
	if n := len(wind); n > 0 {
		if wind[n-1].Speed > 0 {
			speed = wind[n-1].Speed
		}
		if wind[n-1].Density > 0 {
			density = wind[n-1].Density
		}
	}
	windHistory := wind
	if len(windHistory) > windHistoryLen {
		windHistory = windHistory[len(windHistory)-windHistoryLen:]
	}

	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}

	return Snapshot{
		KpIndex: KpIndex{
			Current: current,
			Level:   LevelForKp(current),
			History: kp.Last(kpHistoryLen),
		},
		SolarWind: SolarWind{
			Speed:   speed,
			Density: density,
			History: append([]WindSample{}, windHistory...),
		},
		XrayFlux: XrayFlux{Current: xray, Level: XrayClass(xray)},
		Alerts:   append([]Alert{}, alerts...),
		Summary:  Summarize(current, speed),
	}
}

// Summarize produces the human-readable headline lines.
func Summarize(kp, windSpeed float64) []string {
	kpText := formatKp(kp)
	var lines []string
	switch {
	case kp >= 5:
		lines = append(lines, fmt.Sprintf("Geomagnetic storm active (KP %s)", kpText))
	case kp >= 4:
		lines = append(lines, fmt.Sprintf("Minor geomagnetic activity (KP %s)", kpText))
	default:
		lines = append(lines, fmt.Sprintf("Geomagnetic conditions quiet (KP %s)", kpText))
	}
	if windSpeed > 600 {
		lines = append(lines, fmt.Sprintf("Elevated solar wind (%d km/s)", int(math.Round(windSpeed))))
	}
	if kp >= 4 {
		lines = append(lines, "Aurora may be visible at high latitudes")
	}
	return lines
}

func formatKp(kp float64) string {
	if kp == math.Trunc(kp) {
		return fmt.Sprintf("%d", int(kp))
	}
	return fmt.Sprintf("%.2f", kp)
}

// Scale is one NOAA space weather scale reading (R, S or G).
type Scale struct {
	Scale int    `json:"Scale"`
	Text  string `json:"Text"`
}

// RadiationScales holds the current NOAA radio blackout, solar radiation and
// geomagnetic storm scales.
type RadiationScales struct {
	R Scale `json:"R"`
	S Scale `json:"S"`
	G Scale `json:"G"`
}

// Imagery lists the latest solar observatory image URLs.
type Imagery struct {
	SDO  map[string]string `json:"sdo"`
	SOHO map[string]string `json:"soho"`
}

func DefaultImagery() Imagery {
	return Imagery{
		SDO: map[string]string{
			"aia_171": "https://sdo.gsfc.nasa.gov/assets/img/latest/latest_1024_0171.jpg",
			"aia_304": "https://sdo.gsfc.nasa.gov/assets/img/latest/latest_1024_0304.jpg",
			"aia_193": "https://sdo.gsfc.nasa.gov/assets/img/latest/latest_1024_0193.jpg",
			"hmi_mag": "https://sdo.gsfc.nasa.gov/assets/img/latest/latest_1024_HMIBC.jpg",
		},
		SOHO: map[string]string{
			"lasco_c2": "https://soho.nascom.nasa.gov/data/realtime/c2/1024/latest.jpg",
			"lasco_c3": "https://soho.nascom.nasa.gov/data/realtime/c3/1024/latest.jpg",
		},
	}
}
