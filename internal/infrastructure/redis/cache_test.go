package redis

import (
	"testing"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryEncoding_PreservesFreshnessFields(t *testing.T) {
	stored := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	in := ports.CacheEntry{Value: []byte(`{"count":7}`), StoredAt: stored, TTL: 1500 * time.Millisecond}

	b, err := encodeEntry(in)
	require.NoError(t, err)
	out, err := decodeEntry(b)
	require.NoError(t, err)

	assert.Equal(t, in.Value, out.Value)
	assert.True(t, stored.Equal(out.StoredAt))
	assert.Equal(t, in.TTL, out.TTL)
	assert.True(t, out.Fresh(stored.Add(time.Second)))
	assert.False(t, out.Fresh(stored.Add(1500*time.Millisecond)))
}

func TestDecodeEntry_RejectsGarbage(t *testing.T) {
	_, err := decodeEntry([]byte("not json"))
	assert.Error(t, err)
}

func TestNamespaced(t *testing.T) {
	assert.Equal(t, "spacescope:iss-position", NewRedisCache(nil, "spacescope", nil).namespaced("iss-position"))
	assert.Equal(t, "iss-position", NewRedisCache(nil, "", nil).namespaced("iss-position"))
}
