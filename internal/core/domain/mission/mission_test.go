package mission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine_SortsNewestFirst(t *testing.T) {
	spacex := []Record{
		{ID: "crew-9", Date: time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC), Source: SourceSpaceX},
		{ID: "next", Date: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), Source: SourceSpaceX},
	}

	c := Combine(spacex, NASAMissions())

	require.Len(t, c.Combined, len(spacex)+len(nasaMissions))
	assert.Equal(t, "next", c.Combined[0].ID)
	assert.Equal(t, "dragonfly", c.Combined[1].ID)
	for i := 1; i < len(c.Combined); i++ {
		assert.False(t, c.Combined[i].Date.After(c.Combined[i-1].Date))
	}
	assert.Equal(t, spacex, c.SpaceX)
}

func TestCombine_NilListsBecomeEmpty(t *testing.T) {
	c := Combine(nil, nil)

	assert.NotNil(t, c.SpaceX)
	assert.NotNil(t, c.NASA)
	assert.Empty(t, c.Combined)
}

func TestFindNASA(t *testing.T) {
	m, ok := FindNASA("jwst")
	require.True(t, ok)
	assert.Equal(t, "James Webb Space Telescope", m.Name)

	_, ok = FindNASA("5eb87cd9ffd86e000604b32a")
	assert.False(t, ok)
}

func TestCatalogCopiesAreIndependent(t *testing.T) {
	m := NASAMissions()
	m[0].Name = "changed"
	r := KnownRockets()
	r[0].Name = "changed"

	assert.NotEqual(t, "changed", NASAMissions()[0].Name)
	assert.NotEqual(t, "changed", KnownRockets()[0].Name)
}
