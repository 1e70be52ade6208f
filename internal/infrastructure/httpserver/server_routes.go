package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/", s.index)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api")
	api.GET("/health", s.healthCheck)

	issGroup := api.Group("/iss")
	issGroup.GET("", s.getISSPosition)
	issGroup.GET("/crew", s.getCrew)
	issGroup.GET("/passes", s.getISSPasses)

	celestialGroup := api.Group("/celestial")
	celestialGroup.GET("", s.getCelestialSummary)
	celestialGroup.GET("/events", s.getSkyEvents)
	celestialGroup.GET("/aurora", s.getAuroraVisibility)

	weatherGroup := api.Group("/weather")
	weatherGroup.GET("", s.getSpaceWeather)
	weatherGroup.GET("/imagery", s.getSolarImagery)
	weatherGroup.GET("/radiation", s.getRadiation)

	missions := api.Group("/missions")
	missions.GET("", s.getMissions)
	missions.GET("/rockets/all", s.getRockets)
	missions.GET("/:id", s.getMission)
}
