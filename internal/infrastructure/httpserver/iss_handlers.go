package httpserver

import (
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/labstack/echo/v4"
)

func (s *Server) getISSPosition(c echo.Context) error {
	return respond(c, s.aggregation.GetISSPosition(c.Request().Context()))
}

func (s *Server) getCrew(c echo.Context) error {
	return respond(c, s.aggregation.GetCrew(c.Request().Context()))
}

// getISSPasses reads lat/lon from the query; a missing coordinate keeps its default.
func (s *Server) getISSPasses(c echo.Context) error {
	loc := iss.DefaultLocation
	if err := echo.QueryParamsBinder(c).
		Float64("lat", &loc.Latitude).
		Float64("lon", &loc.Longitude).
		BindError(); err != nil {
		return s.respondError(c, fetch.Errorf(fetch.InvalidInput, "lat and lon must be numbers"))
	}
	if err := c.Validate(&loc); err != nil {
		return s.respondError(c, fetch.Errorf(fetch.InvalidInput, "lat must be within [-90, 90] and lon within [-180, 180]"))
	}
	out, err := s.aggregation.GetISSPasses(c.Request().Context(), loc)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, out)
}
