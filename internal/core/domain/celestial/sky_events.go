package celestial

import "time"

type EventStatus string

const (
	StatusPast     EventStatus = "past"
	StatusActive   EventStatus = "active"
	StatusUpcoming EventStatus = "upcoming"
)

// activeSpan is how long either side of its peak an event counts as active.
const activeSpan = 24 * time.Hour

// SkyEvent is a naked-eye observing event (meteor shower, eclipse, ...).
type SkyEvent struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Peak       time.Time   `json:"peak"`
	Visibility string      `json:"visibility"`
	Intensity  string      `json:"intensity"`
	Status     EventStatus `json:"status"`
}

// SkyEvents pairs the curated observing calendar with live natural events.
type SkyEvents struct {
	SkyEvents     []SkyEvent     `json:"skyEvents"`
	NaturalEvents []NaturalEvent `json:"naturalEvents"`
}

func mustPeak(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var skyCalendar = []SkyEvent{
	{ID: "quadrantids-2026", Name: "Quadrantids Meteor Shower", Type: "meteor_shower", Peak: mustPeak("2026-01-03T06:00:00Z"), Visibility: "Northern Hemisphere", Intensity: "Strong (120 meteors/hr)"},
	{ID: "total-lunar-2026", Name: "Total Lunar Eclipse", Type: "eclipse", Peak: mustPeak("2026-03-03T12:00:00Z"), Visibility: "Americas, Europe, Africa", Intensity: "Total"},
	{ID: "partial-solar-2026", Name: "Partial Solar Eclipse", Type: "eclipse", Peak: mustPeak("2026-03-29T10:00:00Z"), Visibility: "Europe, North Africa, Russia", Intensity: "Partial (95%)"},
	{ID: "lyrids-2026", Name: "Lyrids Meteor Shower", Type: "meteor_shower", Peak: mustPeak("2026-04-22T08:00:00Z"), Visibility: "Global", Intensity: "Moderate (18 meteors/hr)"},
	{ID: "perseids-2026", Name: "Perseids Meteor Shower", Type: "meteor_shower", Peak: mustPeak("2026-08-12T04:00:00Z"), Visibility: "Northern Hemisphere", Intensity: "Very Strong (100 meteors/hr)"},
	{ID: "total-solar-2026", Name: "Total Solar Eclipse", Type: "eclipse", Peak: mustPeak("2026-08-12T17:46:00Z"), Visibility: "Greenland, Iceland, Spain", Intensity: "Total"},
	{ID: "geminids-2026", Name: "Geminids Meteor Shower", Type: "meteor_shower", Peak: mustPeak("2026-12-14T07:00:00Z"), Visibility: "Global", Intensity: "Very Strong (150 meteors/hr)"},
}

// StatusAt classifies an event relative to now.
func (e SkyEvent) StatusAt(now time.Time) EventStatus {
	switch {
	case now.Before(e.Peak.Add(-activeSpan)):
		return StatusUpcoming
	case now.After(e.Peak.Add(activeSpan)):
		return StatusPast
	default:
		return StatusActive
	}
}

// Calendar returns the curated events with their status as of now.
func Calendar(now time.Time) []SkyEvent {
	out := make([]SkyEvent, len(skyCalendar))
	for i, e := range skyCalendar {
		e.Status = e.StatusAt(now)
		out[i] = e
	}
	return out
}
