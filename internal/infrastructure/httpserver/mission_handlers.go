package httpserver

import "github.com/labstack/echo/v4"

func (s *Server) getMissions(c echo.Context) error {
	return respond(c, s.aggregation.GetMissions(c.Request().Context()))
}

func (s *Server) getRockets(c echo.Context) error {
	return respond(c, s.aggregation.GetRockets(c.Request().Context()))
}

func (s *Server) getMission(c echo.Context) error {
	out, err := s.aggregation.GetMissionByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, out)
}
