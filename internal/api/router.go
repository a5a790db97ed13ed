package api

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/profiledesk/profile-directory/docs"
	"github.com/profiledesk/profile-directory/internal/api/handler"
	"github.com/profiledesk/profile-directory/internal/api/middleware"
	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// Deps are the services the router wires into handlers.
type Deps struct {
	Log         zerolog.Logger
	Profiles    ports.ProfileService
	Auth        ports.AuthService
	Chat        ports.ChatService
	Checks      map[string]handler.Check
	CORSOrigins []string
	// Static is the client shell. Unmatched non-API paths get its index.html.
	Static fs.FS
}

// serverPrefixes are never answered with the client shell.
var serverPrefixes = []string{"/api", "/health", "/metrics", "/swagger"}

func isServerPath(p string) bool {
	for _, prefix := range serverPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.HeaderAuthToken,
		},
	}))
	// Metrics wraps Static so the shell fallback is counted as the 200 it renders.
	e.Use(middleware.Metrics())
	if d.Static != nil {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:       "static",
			Filesystem: http.FS(d.Static),
			HTML5:      true,
			Skipper: func(c echo.Context) bool {
				return isServerPath(c.Request().URL.Path)
			},
		}))
	}

	// --- Handlers ---
	profileHandler := handler.NewProfileHandler(d.Profiles)
	authHandler := handler.NewAuthHandler(d.Auth)
	chatHandler := handler.NewChatHandler(d.Chat)
	healthHandler := handler.NewHealthHandler(d.Checks)

	session := middleware.Session(d.Auth)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- API ---
	api := e.Group("/api")
	api.GET("/profiles", profileHandler.List)
	api.GET("/profiles/search", profileHandler.Search)
	api.GET("/profiles/:id", profileHandler.Get)
	api.POST("/profiles", profileHandler.Create, session, adminOnly)
	api.PUT("/profiles/:id", profileHandler.Update, session, adminOnly)
	api.DELETE("/profiles/:id", profileHandler.Delete, session, adminOnly)

	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout, session)
	api.POST("/change-password", authHandler.ChangePassword, session)

	api.POST("/chat", chatHandler.Chat)

	// --- Health probes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
