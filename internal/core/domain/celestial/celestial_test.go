package celestial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility_KpThree(t *testing.T) {
	regions := Visibility(3, DefaultRegions)
	require.Len(t, regions, len(DefaultRegions))

	byName := map[string]AuroraRegion{}
	for _, r := range regions {
		byName[r.Name] = r
	}
	assert.True(t, byName["Alaska"].Visible)
	assert.InDelta(t, 2.0/3.0, byName["Alaska"].Intensity, 1e-9)
	assert.True(t, byName["Iceland"].Visible)
	assert.InDelta(t, 1.0/3.0, byName["Iceland"].Intensity, 1e-9)
	assert.False(t, byName["Canada"].Visible)
	assert.Equal(t, 0.0, byName["Canada"].Intensity)
	assert.False(t, byName["Northern US"].Visible)
}

func TestVisibility_QuietAndExtreme(t *testing.T) {
	for _, r := range Visibility(1, DefaultRegions) {
		assert.False(t, r.Visible, r.Name)
		assert.Equal(t, 0.0, r.Intensity, r.Name)
	}
	for _, r := range Visibility(9, DefaultRegions) {
		assert.True(t, r.Visible, r.Name)
		assert.Equal(t, 1.0, r.Intensity, r.Name)
	}
}

func TestSkyEventStatusAt(t *testing.T) {
	peak := time.Date(2026, 8, 12, 4, 0, 0, 0, time.UTC)
	e := SkyEvent{Peak: peak}

	assert.Equal(t, StatusUpcoming, e.StatusAt(peak.Add(-25*time.Hour)))
	assert.Equal(t, StatusActive, e.StatusAt(peak.Add(-24*time.Hour)))
	assert.Equal(t, StatusActive, e.StatusAt(peak.Add(23*time.Hour)))
	assert.Equal(t, StatusPast, e.StatusAt(peak.Add(25*time.Hour)))
}

func TestCalendar_StatusFollowsClock(t *testing.T) {
	now := time.Date(2026, 4, 22, 8, 0, 0, 0, time.UTC)
	events := Calendar(now)
	require.NotEmpty(t, events)

	status := map[string]EventStatus{}
	for _, e := range events {
		status[e.ID] = e.Status
	}
	assert.Equal(t, StatusPast, status["quadrantids-2026"])
	assert.Equal(t, StatusActive, status["lyrids-2026"])
	assert.Equal(t, StatusUpcoming, status["geminids-2026"])

	// Calendar must not leak status into the shared table.
	assert.Empty(t, skyCalendar[0].Status)
}

func TestRollingWindow(t *testing.T) {
	w := RollingWindow(time.Date(2026, 3, 10, 23, 30, 0, 0, time.FixedZone("X", -5*3600)))

	assert.Equal(t, "2026-02-09", w.StartDate())
	assert.Equal(t, "2026-03-18", w.EndDate())
}
