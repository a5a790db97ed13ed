package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// HeaderAuthToken carries the opaque session token.
const HeaderAuthToken = "x-auth-token"

// Context keys set by Session.
const (
	CtxSession = "session"
	CtxToken   = "session_token"
	CtxRole    = "role"
)

// Session resolves the x-auth-token header through the auth service and
// stores the session in the echo context. Missing or unknown tokens fail
// with domain.ErrForbidden.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAuthToken)

			sess, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(CtxSession, sess)
			c.Set(CtxToken, token)
			c.Set(CtxRole, sess.Role)
			return next(c)
		}
	}
}
