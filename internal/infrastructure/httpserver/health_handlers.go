package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "SpaceScope API"
	serviceVersion = "1.0.0"
)

// Health check handler. Failing checkers degrade the service; open provider
// circuits are reported but only mean responses are served from fallbacks.
func (s *Server) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string)
	overall := "healthy"
	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		if err := hc.Check(ctx); err != nil {
			deps[hc.Name()] = "unhealthy"
			if overall == "healthy" {
				overall = "degraded"
			}
			if s.logger != nil {
				s.logger.WithField("dependency", hc.Name()).WithError(err).Warn("health check failed")
			}
		} else {
			deps[hc.Name()] = "healthy"
		}
	}
	upstreams := make(map[string]string, len(s.upstreams))
	for _, u := range s.upstreams {
		if u == nil {
			continue
		}
		upstreams[u.Name()] = u.State()
	}
	health := map[string]interface{}{
		"status":       overall,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"version":      serviceVersion,
		"service":      serviceName,
		"dependencies": deps,
		"upstreams":    upstreams,
	}
	code := http.StatusOK
	if overall != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, health)
}

// index lists the top-level route groups.
func (s *Server) index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": serviceName + " Server",
		"version": serviceVersion,
		"endpoints": map[string]string{
			"celestial": "/api/celestial",
			"iss":       "/api/iss",
			"missions":  "/api/missions",
			"weather":   "/api/weather",
			"health":    "/api/health",
			"metrics":   "/metrics",
		},
	})
}
