package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/FutureAlok1445/SpaceScope/configs"
	"github.com/FutureAlok1445/SpaceScope/internal/application/services"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/cache"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/fetcher"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/health"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/httpserver"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/providers"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/redis"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/repositories"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting SpaceScope API...")

	clock := ports.SystemClock
	var hcSlice []ports.HealthChecker

	// Response cache and rate limit counters live in Redis when it is enabled,
	// otherwise in process memory.
	var (
		responseCache ports.Cache
		rateLimitRepo ports.RateLimitRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")

		hcSlice = append(hcSlice, health.NewRedisHealthChecker(redisClient))
		rateLimitRepo = repositories.NewRateLimitRedisRepository(redisClient, clock)
		if cfg.Cache.Backend == "redis" {
			responseCache = redis.NewRedisCache(redisClient, cfg.Cache.KeyPrefix, clock)
		}
	} else {
		rateLimitRepo = repositories.NewRateLimitMemoryRepository(clock)
	}
	if responseCache == nil {
		responseCache = cache.NewMemoryCache(clock)
	}
	backend := "memory"
	if _, ok := responseCache.(*redis.RedisCache); ok {
		backend = "redis"
	}
	hcSlice = append(hcSlice, health.NewCacheHealthChecker(backend, responseCache))
	logger.WithField("backend", backend).Info("Response cache initialized")

	// One retrying, circuit-broken fetcher per provider so a dead feed
	// cannot throttle or trip the others.
	httpClient := &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	var upstreams []ports.UpstreamStatus
	providerFetcher := func(name string) ports.Fetcher {
		inner := fetcher.NewRetryingFetcher(httpClient, fetcher.Config{
			Provider:      name,
			Timeout:       cfg.Providers.RequestTimeout,
			RatePerSecond: cfg.Providers.RatePerSecond,
			Burst:         cfg.Providers.Burst,
			UserAgent:     cfg.Providers.UserAgent,
		}, clock, logger)
		b := fetcher.NewBreakerFetcher(inner, name, fetcher.BreakerConfig{
			ConsecutiveFailures: uint32(max(cfg.Providers.BreakerFailures, 0)),
			OpenTimeout:         cfg.Providers.BreakerOpenTimeout,
		}, logger)
		upstreams = append(upstreams, b)
		return b
	}
	retry := providers.RetryPolicy{MaxAttempts: cfg.Providers.MaxAttempts, BaseDelay: cfg.Providers.BaseDelay}
	if cfg.Providers.NASAAPIKey == providers.DemoAPIKey {
		logger.Warn("NASA_API_KEY not set; using the heavily rate-limited DEMO_KEY")
	}

	sources := services.Providers{
		ISS:    providers.NewOpenNotifyProvider(providerFetcher("open-notify"), cfg.Providers.OpenNotifyURL, retry),
		DONKI:  providers.NewDONKIProvider(providerFetcher("nasa-donki"), cfg.Providers.DONKIURL, cfg.Providers.NASAAPIKey, retry),
		EONET:  providers.NewEONETProvider(providerFetcher("nasa-eonet"), cfg.Providers.EONETURL, retry),
		SWPC:   providers.NewSWPCProvider(providerFetcher("noaa-swpc"), cfg.Providers.SWPCURL, retry),
		SpaceX: providers.NewSpaceXProvider(providerFetcher("spacex"), cfg.Providers.SpaceXURL, retry),
	}

	policies := services.DefaultPolicies(services.CacheTTLs{
		ISSPosition:   cfg.Cache.ISSPositionTTL,
		Crew:          cfg.Cache.CrewTTL,
		Passes:        cfg.Cache.PassesTTL,
		Celestial:     cfg.Cache.CelestialTTL,
		NaturalEvents: cfg.Cache.NaturalEventsTTL,
		KpIndex:       cfg.Cache.KpIndexTTL,
		Weather:       cfg.Cache.WeatherTTL,
		Radiation:     cfg.Cache.RadiationTTL,
		Missions:      cfg.Cache.MissionsTTL,
		Rockets:       cfg.Cache.RocketsTTL,
	}, services.FallbackTimeouts{
		ISS:       cfg.Fallback.ISSTimeout,
		Crew:      cfg.Fallback.CrewTimeout,
		Celestial: cfg.Fallback.CelestialTimeout,
		Events:    cfg.Fallback.EventsTimeout,
		Weather:   cfg.Fallback.WeatherTimeout,
		Radiation: cfg.Fallback.RadiationTimeout,
		Missions:  cfg.Fallback.MissionsTimeout,
		Rockets:   cfg.Fallback.RocketsTimeout,
	})
	aggregationService := services.NewAggregationService(sources, responseCache, policies, clock, logger)

	rateLimiterConfig := &services.RateLimiterConfig{
		DefaultRequestsPerMinute: cfg.RateLimit.DefaultRequestsPerMinute,
		BurstMultiplier:          cfg.RateLimit.BurstMultiplier,
		Window:                   cfg.RateLimit.Window,
		KeyPrefix:                cfg.RateLimit.KeyPrefix,
	}
	rateLimiterService := services.NewRateLimiterService(rateLimitRepo, rateLimiterConfig, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
	}

	deps := httpserver.ServerDeps{
		AggregationService: aggregationService,
		RateLimiterService: rateLimiterService,
		HealthCheckers:     hcSlice,
		Upstreams:          upstreams,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
