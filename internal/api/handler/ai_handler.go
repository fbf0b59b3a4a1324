package handler

import (
	"fmt"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/api/metrics"
	"github.com/nexushealth/hms-api/internal/api/middleware"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

// AIRoute is one prompt-backed endpoint.
type AIRoute interface {
	Name() string
	Handle(gw ports.AIGateway, logger zerolog.Logger) echo.HandlerFunc
}

// AIFeature binds a request body of type I and renders it into a prompt.
type AIFeature[I any] struct {
	name   string
	prompt *template.Template
}

// NewAIFeature parses the prompt template and panics if it is malformed.
func NewAIFeature[I any](name, prompt string) AIFeature[I] {
	return AIFeature[I]{
		name:   name,
		prompt: template.Must(template.New(name).Funcs(promptFuncs).Parse(prompt)),
	}
}

func (f AIFeature[I]) Name() string { return f.name }

func (f AIFeature[I]) Render(in I) (string, error) {
	var sb strings.Builder
	if err := f.prompt.Execute(&sb, in); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", f.name, err)
	}
	return sb.String(), nil
}

// Handle always answers 200 with the gateway result once the body is valid;
// backend failures show up as status "error" in the body.
func (f AIFeature[I]) Handle(gw ports.AIGateway, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in I
		if err := bindBody(c, &in); err != nil {
			return err
		}
		if err := c.Validate(&in); err != nil {
			return err
		}

		prompt, err := f.Render(in)
		if err != nil {
			return err
		}

		start := time.Now()
		res := gw.Invoke(c.Request().Context(), f.name, prompt)
		metrics.AIRequestDuration.WithLabelValues(f.name).Observe(time.Since(start).Seconds())
		metrics.AIRequestsTotal.WithLabelValues(f.name, string(res.Status)).Inc()

		logger.Info().
			Str("feature", f.name).
			Str("caller", callerID(c)).
			Str("status", string(res.Status)).
			Msg("ai request served")
		return c.JSON(http.StatusOK, res)
	}
}

type AIHandler struct {
	gateway  ports.AIGateway
	identify echo.MiddlewareFunc
	limiter  *middleware.RateLimiter
	logger   zerolog.Logger
}

// NewAIHandler wires the AI routes. identify should be an OptionalAuth
// middleware; limiter may be nil to disable rate limiting.
func NewAIHandler(gateway ports.AIGateway, identify echo.MiddlewareFunc, limiter *middleware.RateLimiter, logger zerolog.Logger) *AIHandler {
	return &AIHandler{gateway: gateway, identify: identify, limiter: limiter, logger: logger}
}

// Register mounts /ai and /ai/advanced. The routes never require a caller,
// so the authn middleware is not used.
func (h *AIHandler) Register(g *echo.Group, _ echo.MiddlewareFunc) {
	var mw []echo.MiddlewareFunc
	if h.identify != nil {
		mw = append(mw, h.identify)
	}
	if h.limiter != nil {
		mw = append(mw, h.limiter.Middleware())
	}

	ai := g.Group("/ai", mw...)
	ai.GET("/status", h.Status)
	for _, f := range basicAIFeatures {
		ai.POST("/"+f.Name(), f.Handle(h.gateway, h.logger))
	}

	advanced := ai.Group("/advanced")
	for _, f := range advancedAIFeatures {
		advanced.POST("/"+f.Name(), f.Handle(h.gateway, h.logger))
	}
}

// Status reports which backend answers AI requests.
//
// @Summary      AI backend mode
// @Tags         AI Services
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/ai/status [get]
func (h *AIHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"mode": h.gateway.Mode()})
}
