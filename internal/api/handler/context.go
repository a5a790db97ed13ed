package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/profiledesk/profile-directory/internal/api/middleware"
	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// ctxSession returns the session the guard attached to the request.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.CtxSession).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Access denied: missing session")
	}
	return sess, nil
}

func ctxToken(c echo.Context) string {
	tok, _ := c.Get(middleware.CtxToken).(string)
	return tok
}

// jsonFieldName reports struct fields by their JSON name in validation messages.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}
