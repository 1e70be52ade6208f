package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSnapshot_DefaultsWhenFeedsAreEmpty(t *testing.T) {
	s := BuildSnapshot(KpHistory{}, nil, 0, nil)

	assert.Equal(t, DefaultKp, s.KpIndex.Current)
	assert.Equal(t, "quiet", s.KpIndex.Level.Level)
	assert.Equal(t, DefaultWindSpeed, s.SolarWind.Speed)
	assert.Equal(t, DefaultWindDensity, s.SolarWind.Density)
	assert.Equal(t, "A-class (Minimal)", s.XrayFlux.Level)
	assert.NotNil(t, s.Alerts)
	assert.NotNil(t, s.KpIndex.History)
	assert.Equal(t, []string{"Geomagnetic conditions quiet (KP 2)"}, s.Summary)
}

func TestBuildSnapshot_TrimsHistories(t *testing.T) {
	kp := KpHistory{Current: 5.33}
	for i := 0; i < 30; i++ {
		kp.Samples = append(kp.Samples, KpSample{Value: float64(i)})
	}
	wind := make([]WindSample, 25)
	wind[24] = WindSample{Speed: 650, Density: 7.5}
	alerts := make([]Alert, 12)

	s := BuildSnapshot(kp, wind, 2e-5, alerts)

	assert.Len(t, s.KpIndex.History, 24)
	assert.Equal(t, 6.0, s.KpIndex.History[0].Value)
	assert.Len(t, s.SolarWind.History, 20)
	assert.Len(t, s.Alerts, 10)
	assert.Equal(t, 650.0, s.SolarWind.Speed)
	assert.Equal(t, "M-class (Strong)", s.XrayFlux.Level)
	assert.Equal(t, "moderate", s.KpIndex.Level.Level)
	assert.Equal(t, []string{
		"Geomagnetic storm active (KP 5.33)",
		"Elevated solar wind (650 km/s)",
		"Aurora may be visible at high latitudes",
	}, s.Summary)
}

func TestLevelForKp_Boundaries(t *testing.T) {
	cases := map[float64]string{0: "quiet", 3.99: "quiet", 4: "minor", 5: "moderate", 6: "strong", 7: "severe", 8: "extreme", 9: "extreme"}
	for kp, want := range cases {
		assert.Equal(t, want, LevelForKp(kp).Level, "kp=%v", kp)
	}
}

func TestXrayClass_Boundaries(t *testing.T) {
	assert.Equal(t, "X-class (Extreme)", XrayClass(1e-4))
	assert.Equal(t, "C-class (Moderate)", XrayClass(1e-6))
	assert.Equal(t, "B-class (Low)", XrayClass(1e-7))
	assert.Equal(t, "A-class (Minimal)", XrayClass(9e-8))
}

func TestKpHistoryLast(t *testing.T) {
	h := KpHistory{Samples: []KpSample{{Value: 1}, {Value: 2}, {Value: 3}}}

	assert.Equal(t, []KpSample{{Value: 2}, {Value: 3}}, h.Last(2))
	assert.Len(t, h.Last(8), 3)
	assert.Empty(t, h.Last(0))
}
