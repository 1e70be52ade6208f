package celestial

import "time"

const dateLayout = "2006-01-02"

// DateWindow is an inclusive range of calendar days.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// RollingWindow covers 30 days before today through 7 days after today (UTC).
func RollingWindow(now time.Time) DateWindow {
	today := now.UTC()
	return DateWindow{
		Start: today.AddDate(0, 0, -30),
		End:   today.AddDate(0, 0, 7),
	}
}

func (w DateWindow) StartDate() string { return w.Start.Format(dateLayout) }
func (w DateWindow) EndDate() string   { return w.End.Format(dateLayout) }

// CME is a coronal mass ejection as reported by DONKI.
type CME struct {
	ActivityID     string `json:"activityID"`
	StartTime      string `json:"startTime"`
	SourceLocation string `json:"sourceLocation,omitempty"`
	Note           string `json:"note,omitempty"`
	Link           string `json:"link,omitempty"`
}

type SolarFlare struct {
	FlrID          string `json:"flrID"`
	BeginTime      string `json:"beginTime"`
	PeakTime       string `json:"peakTime,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
	ClassType      string `json:"classType"`
	SourceLocation string `json:"sourceLocation,omitempty"`
	Link           string `json:"link,omitempty"`
}

type KpReading struct {
	ObservedTime string  `json:"observedTime"`
	KpIndex      float64 `json:"kpIndex"`
	Source       string  `json:"source,omitempty"`
}

type GeomagneticStorm struct {
	GstID      string      `json:"gstID"`
	StartTime  string      `json:"startTime"`
	AllKpIndex []KpReading `json:"allKpIndex"`
	Link       string      `json:"link,omitempty"`
}

// EventSet is the merged DONKI summary. Field order is fixed and independent
// of the order in which the underlying feeds complete.
type EventSet struct {
	CoronalMassEjections []CME              `json:"coronalMassEjections"`
	SolarFlares          []SolarFlare       `json:"solarFlares"`
	GeomagneticStorms    []GeomagneticStorm `json:"geomagneticStorms"`
}

// NaturalEvent is an open EONET event.
type NaturalEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Categories  []string  `json:"categories"`
	Date        string    `json:"date,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	Link        string    `json:"link,omitempty"`
}
