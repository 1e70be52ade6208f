package httpserver

import "github.com/labstack/echo/v4"

func (s *Server) getCelestialSummary(c echo.Context) error {
	return respond(c, s.aggregation.GetCelestialSummary(c.Request().Context()))
}

func (s *Server) getSkyEvents(c echo.Context) error {
	return respond(c, s.aggregation.GetSkyEvents(c.Request().Context()))
}

func (s *Server) getAuroraVisibility(c echo.Context) error {
	return respond(c, s.aggregation.GetAuroraVisibility(c.Request().Context()))
}
