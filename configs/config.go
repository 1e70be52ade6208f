package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Providers ProvidersConfig
	Fallback  FallbackConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

type RedisConfig struct {
	// Enabled turns on the Redis client for the shared cache and rate limit counters.
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

type CacheConfig struct {
	Backend   string // memory or redis
	KeyPrefix string

	ISSPositionTTL   time.Duration
	CrewTTL          time.Duration
	PassesTTL        time.Duration
	CelestialTTL     time.Duration
	NaturalEventsTTL time.Duration
	KpIndexTTL       time.Duration
	WeatherTTL       time.Duration
	RadiationTTL     time.Duration
	MissionsTTL      time.Duration
	RocketsTTL       time.Duration
}

type ProvidersConfig struct {
	OpenNotifyURL string
	DONKIURL      string
	EONETURL      string
	SWPCURL       string
	SpaceXURL     string
	NASAAPIKey    string
	UserAgent     string

	MaxAttempts    int
	BaseDelay      time.Duration
	RequestTimeout time.Duration
	// Outbound throttling per provider; zero disables it.
	RatePerSecond float64
	Burst         int

	BreakerFailures    int
	BreakerOpenTimeout time.Duration
}

type FallbackConfig struct {
	ISSTimeout       time.Duration
	CrewTimeout      time.Duration
	CelestialTimeout time.Duration
	EventsTimeout    time.Duration
	WeatherTimeout   time.Duration
	RadiationTimeout time.Duration
	MissionsTimeout  time.Duration
	RocketsTimeout   time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

type RateLimitConfig struct {
	DefaultRequestsPerMinute int
	BurstMultiplier          float64
	Window                   time.Duration
	KeyPrefix                string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnv("PORT", getEnv("SERVER_PORT", "5000")),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
			AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{"*"}),
			Environment:    getEnv("ENVIRONMENT", "development"),
		},
		Redis: RedisConfig{
			Enabled:      getBoolEnv("REDIS_ENABLED", false),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Cache: CacheConfig{
			Backend:          strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
			KeyPrefix:        getEnv("CACHE_KEY_PREFIX", "spacescope"),
			ISSPositionTTL:   getDurationEnv("CACHE_TTL_ISS", 5*time.Second),
			CrewTTL:          getDurationEnv("CACHE_TTL_CREW", 5*time.Minute),
			PassesTTL:        getDurationEnv("CACHE_TTL_PASSES", 10*time.Minute),
			CelestialTTL:     getDurationEnv("CACHE_TTL_CELESTIAL", 15*time.Minute),
			NaturalEventsTTL: getDurationEnv("CACHE_TTL_EVENTS", 10*time.Minute),
			KpIndexTTL:       getDurationEnv("CACHE_TTL_KP", time.Minute),
			WeatherTTL:       getDurationEnv("CACHE_TTL_WEATHER", time.Minute),
			RadiationTTL:     getDurationEnv("CACHE_TTL_RADIATION", 5*time.Minute),
			MissionsTTL:      getDurationEnv("CACHE_TTL_MISSIONS", 10*time.Minute),
			RocketsTTL:       getDurationEnv("CACHE_TTL_ROCKETS", time.Hour),
		},
		Providers: ProvidersConfig{
			OpenNotifyURL:      getEnv("OPEN_NOTIFY_URL", "http://api.open-notify.org"),
			DONKIURL:           getEnv("NASA_DONKI_URL", "https://api.nasa.gov/DONKI"),
			EONETURL:           getEnv("NASA_EONET_URL", "https://eonet.gsfc.nasa.gov/api/v3"),
			SWPCURL:            getEnv("NOAA_SWPC_URL", "https://services.swpc.noaa.gov"),
			SpaceXURL:          getEnv("SPACEX_API_URL", "https://api.spacexdata.com/v4"),
			NASAAPIKey:         getEnv("NASA_API_KEY", "DEMO_KEY"),
			UserAgent:          getEnv("PROVIDER_USER_AGENT", "SpaceScope/1.0"),
			MaxAttempts:        getIntEnv("PROVIDER_MAX_ATTEMPTS", 3),
			BaseDelay:          getDurationEnv("PROVIDER_BASE_DELAY", 500*time.Millisecond),
			RequestTimeout:     getDurationEnv("PROVIDER_REQUEST_TIMEOUT", 5*time.Second),
			RatePerSecond:      getFloatEnv("PROVIDER_RATE_PER_SECOND", 5),
			Burst:              getIntEnv("PROVIDER_BURST", 10),
			BreakerFailures:    getIntEnv("PROVIDER_BREAKER_FAILURES", 5),
			BreakerOpenTimeout: getDurationEnv("PROVIDER_BREAKER_OPEN_TIMEOUT", 30*time.Second),
		},
		Fallback: FallbackConfig{
			ISSTimeout:       getDurationEnv("FALLBACK_TIMEOUT_ISS", 2*time.Second),
			CrewTimeout:      getDurationEnv("FALLBACK_TIMEOUT_CREW", 4*time.Second),
			CelestialTimeout: getDurationEnv("FALLBACK_TIMEOUT_CELESTIAL", 8*time.Second),
			EventsTimeout:    getDurationEnv("FALLBACK_TIMEOUT_EVENTS", 6*time.Second),
			WeatherTimeout:   getDurationEnv("FALLBACK_TIMEOUT_WEATHER", 8*time.Second),
			RadiationTimeout: getDurationEnv("FALLBACK_TIMEOUT_RADIATION", 4*time.Second),
			MissionsTimeout:  getDurationEnv("FALLBACK_TIMEOUT_MISSIONS", 8*time.Second),
			RocketsTimeout:   getDurationEnv("FALLBACK_TIMEOUT_ROCKETS", 6*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		RateLimit: RateLimitConfig{
			DefaultRequestsPerMinute: getIntEnv("RATE_LIMIT_RPM", 120),
			BurstMultiplier:          getFloatEnv("RATE_LIMIT_BURST", 2.0),
			Window:                   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
			KeyPrefix:                getEnv("RATE_LIMIT_KEY_PREFIX", "ratelimit:client"),
		},
	}

	// A shared cache needs the Redis client.
	if cfg.Cache.Backend == "redis" {
		cfg.Redis.Enabled = true
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getListEnv reads a comma-separated list, dropping empty items.
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
