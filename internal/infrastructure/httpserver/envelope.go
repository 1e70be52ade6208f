package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Envelope is the body of every data route.
type Envelope struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Fallback  bool       `json:"fallback,omitempty"`
	Cached    bool       `json:"cached,omitempty"`
	Error     string     `json:"error,omitempty"`
	FetchedAt *time.Time `json:"fetchedAt,omitempty"`
}

func respond[T any](c echo.Context, out ports.Outcome[T]) error {
	env := Envelope{
		Success:  true,
		Data:     out.Data,
		Fallback: out.Fallback,
		Cached:   out.Cached,
	}
	if !out.FetchedAt.IsZero() {
		at := out.FetchedAt.UTC()
		env.FetchedAt = &at
	}
	return c.JSON(http.StatusOK, env)
}

// statusFor maps a domain error to its HTTP status and public message.
// Only caller mistakes surface; anything else is an internal error.
func statusFor(err error) (int, string) {
	var fe *fetch.Error
	if errors.As(err, &fe) {
		switch fe.Kind {
		case fetch.NotFound:
			return http.StatusNotFound, fe.Message
		case fetch.InvalidInput:
			return http.StatusBadRequest, fe.Message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func (s *Server) respondError(c echo.Context, err error) error {
	code, msg := statusFor(err)
	if code == http.StatusInternalServerError && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"path": c.Path(), "method": c.Request().Method}).WithError(err).Error("request failed")
	}
	return c.JSON(code, Envelope{Success: false, Error: msg})
}

// errorHandler renders echo errors (unknown routes, 429s, panics) as envelopes.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"path": c.Request().URL.Path}).WithError(err).Error("unhandled error")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, Envelope{Success: false, Error: msg})
	}
	if writeErr != nil && s.logger != nil {
		s.logger.WithError(writeErr).Warn("failed to write error response")
	}
}
