package mission

import (
	"sort"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
)

type Source string

const (
	SourceSpaceX Source = "spacex"
	SourceNASA   Source = "nasa"
)

type Links struct {
	Patch     string `json:"patch,omitempty"`
	Webcast   string `json:"webcast,omitempty"`
	Article   string `json:"article,omitempty"`
	Wikipedia string `json:"wikipedia,omitempty"`
}

// Record is a launch or mission from any source.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	DateLocal string    `json:"dateLocal,omitempty"`
	Status    Status    `json:"status"`
	Success   *bool     `json:"success,omitempty"`
	Type      string    `json:"type,omitempty"`
	Details   string    `json:"details,omitempty"`
	Rocket    string    `json:"rocket,omitempty"`
	Launchpad string    `json:"launchpad,omitempty"`
	Links     *Links    `json:"links,omitempty"`
	Source    Source    `json:"source"`
}

// Catalog groups missions by source plus a combined, newest-first list.
type Catalog struct {
	SpaceX   []Record `json:"spacex"`
	NASA     []Record `json:"nasa"`
	Combined []Record `json:"combined"`
}

// Combine builds a Catalog, sorting the combined list by date descending.
func Combine(spacex, nasa []Record) Catalog {
	if spacex == nil {
		spacex = []Record{}
	}
	if nasa == nil {
		nasa = []Record{}
	}
	combined := make([]Record, 0, len(spacex)+len(nasa))
	combined = append(combined, spacex...)
	combined = append(combined, nasa...)
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Date.After(combined[j].Date)
	})
	return Catalog{SpaceX: spacex, NASA: nasa, Combined: combined}
}

func nasaDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var nasaMissions = []Record{
	{ID: "artemis-2", Name: "Artemis II", Date: nasaDate("2025-09-01T00:00:00Z"), Status: StatusScheduled, Type: "Crewed Lunar Flyby", Details: "First crewed Artemis mission, lunar flyby with 4 astronauts.", Source: SourceNASA},
	{ID: "europa-clipper", Name: "Europa Clipper", Date: nasaDate("2024-10-14T00:00:00Z"), Status: StatusActive, Type: "Jovian Orbiter", Details: "Mission to study Jupiter's moon Europa and its subsurface ocean.", Source: SourceNASA},
	{ID: "jwst", Name: "James Webb Space Telescope", Date: nasaDate("2021-12-25T00:00:00Z"), Status: StatusActive, Type: "Space Telescope", Details: "Most powerful space telescope, observing in infrared.", Source: SourceNASA},
	{ID: "perseverance", Name: "Perseverance Rover", Date: nasaDate("2021-02-18T00:00:00Z"), Status: StatusActive, Type: "Mars Rover", Details: "Searching for signs of ancient microbial life on Mars.", Source: SourceNASA},
	{ID: "psyche", Name: "Psyche", Date: nasaDate("2023-10-13T00:00:00Z"), Status: StatusActive, Type: "Asteroid Probe", Details: "Mission to explore metal-rich asteroid 16 Psyche.", Source: SourceNASA},
	{ID: "dragonfly", Name: "Dragonfly", Date: nasaDate("2028-06-01T00:00:00Z"), Status: StatusScheduled, Type: "Titan Rotorcraft", Details: "Drone mission to explore Saturn's moon Titan.", Source: SourceNASA},
}

// NASAMissions returns a copy of the curated NASA mission list.
func NASAMissions() []Record {
	return append([]Record(nil), nasaMissions...)
}

// FindNASA looks up a curated mission by id.
func FindNASA(id string) (Record, bool) {
	for _, m := range nasaMissions {
		if m.ID == id {
			return m, true
		}
	}
	return Record{}, false
}
