package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/nexushealth/hms-api/docs" // swagger docs
	"github.com/nexushealth/hms-api/internal/api/handler"
	"github.com/nexushealth/hms-api/internal/api/metrics"
	"github.com/nexushealth/hms-api/internal/api/middleware"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

// Deps is everything the router needs from the composition root.
type Deps struct {
	Logger         zerolog.Logger
	Validator      ports.Validator
	Authenticator  ports.Authenticator
	AllowedOrigins []string
	Health         *handler.HealthHandler
	// Routes are mounted under /api in order.
	Routes []handler.Routes
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Validator = handler.NewValidator(d.Validator)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Logger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
	}))
	e.Use(metrics.Middleware())

	// --- Probes and tooling (no auth required) ---
	health := d.Health
	if health == nil {
		health = handler.NewHealthHandler(nil, d.Logger)
	}
	e.GET("/health", health.Liveness)
	e.GET("/api/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	g := e.Group("/api")
	authn := middleware.Auth(d.Authenticator)
	for _, r := range d.Routes {
		r.Register(g, authn)
	}

	return e
}
