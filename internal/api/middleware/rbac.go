package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// RBAC lets the request through only when the session role is one of
// allowedRoles. Roles compare exactly; Session must run first.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.Errorf(domain.ErrForbidden, "Access denied: admin session required")
			}
			return next(c)
		}
	}
}
