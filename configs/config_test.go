package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "")
	t.Setenv("NASA_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Cache.ISSPositionTTL)
	assert.Equal(t, "DEMO_KEY", cfg.Providers.NASAAPIKey)
	assert.Equal(t, 3, cfg.Providers.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Fallback.ISSTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://spacescope.app,")
	t.Setenv("FALLBACK_TIMEOUT_ISS", "750ms")
	t.Setenv("PROVIDER_MAX_ATTEMPTS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"http://localhost:5173", "https://spacescope.app"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 750*time.Millisecond, cfg.Fallback.ISSTimeout)
	assert.Equal(t, 3, cfg.Providers.MaxAttempts)
}
