package httpserver

import (
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	customMiddleware "github.com/FutureAlok1445/SpaceScope/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

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

type ServerDeps struct {
	AggregationService ports.AggregationService
	RateLimiterService ports.RateLimiterService
	HealthCheckers     []ports.HealthChecker
	// Upstreams expose provider circuit states on the health endpoint.
	Upstreams []ports.UpstreamStatus
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	aggregation    ports.AggregationService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
	upstreams      []ports.UpstreamStatus
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = &JSONSerializer{}
	e.Validator = NewRequestValidator()

	if serverConfig == nil {
		serverConfig = &ServerConfig{}
	}

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		aggregation:    deps.AggregationService,
		healthCheckers: deps.HealthCheckers,
		upstreams:      deps.Upstreams,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.RateLimiterService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}
	e.HTTPErrorHandler = server.errorHandler

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
