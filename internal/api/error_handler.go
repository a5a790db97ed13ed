package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/profiledesk/profile-directory/internal/api/handler"
	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders {"success": false, "error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, handler.ErrorResponse{Success: false, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (router 404/405, bind failures).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return he.Code, "Not found"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, domain.Message(err)
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid profile ID format"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Profile not found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		if msg := domain.Message(err); msg != domain.ErrInvalidCredentials.Error() {
			return http.StatusUnauthorized, msg
		}
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, domain.ErrForbidden):
		if msg := domain.Message(err); msg != domain.ErrForbidden.Error() {
			return http.StatusForbidden, msg
		}
		return http.StatusForbidden, "Access denied"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
