package httpserver

import "github.com/labstack/echo/v4"

func (s *Server) getSpaceWeather(c echo.Context) error {
	return respond(c, s.aggregation.GetSpaceWeather(c.Request().Context()))
}

func (s *Server) getSolarImagery(c echo.Context) error {
	return respond(c, s.aggregation.GetSolarImagery(c.Request().Context()))
}

func (s *Server) getRadiation(c echo.Context) error {
	return respond(c, s.aggregation.GetRadiation(c.Request().Context()))
}
