// Package app wires configuration, storage, services and HTTP routes into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/api"
	"github.com/nexushealth/hms-api/internal/api/handler"
	"github.com/nexushealth/hms-api/internal/api/middleware"
	"github.com/nexushealth/hms-api/internal/core/ports"
	"github.com/nexushealth/hms-api/internal/core/service"
	"github.com/nexushealth/hms-api/internal/infrastructure/config"
	"github.com/nexushealth/hms-api/internal/infrastructure/db"
	"github.com/nexushealth/hms-api/internal/infrastructure/db/memory"
	redisstore "github.com/nexushealth/hms-api/internal/infrastructure/db/redis"
	"github.com/nexushealth/hms-api/internal/infrastructure/genai"
	"github.com/nexushealth/hms-api/internal/pkg/validation"
	"github.com/nexushealth/hms-api/pkg/logger"
)

const limiterCleanupInterval = time.Minute

type App struct {
	cfg     config.Config
	logger  zerolog.Logger
	echo    *echo.Echo
	engines *Engines
	auth    *service.AuthService
	gateway *service.AIGateway

	stop    context.CancelFunc
	closers []func(context.Context) error
}

// New connects every backend named by cfg and builds the router. On error
// anything already opened is closed again.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (_ *App, err error) {
	a := &App{cfg: cfg, logger: log}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	store, err := db.Open(ctx, db.Config{
		URL:      cfg.Database.URL,
		MongoDB:  cfg.Database.MongoDB,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("open datastore: %w", err)
	}
	a.closers = append(a.closers, store.Close)
	log.Info().Str("backend", string(store.Kind())).Msg("datastore ready")

	checks := map[string]handler.Pinger{"datastore": store}
	revoked, err := a.revocationStore(ctx, checks)
	if err != nil {
		return nil, err
	}

	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		Algorithm:  cfg.Auth.JWTAlgorithm,
		TTL:        cfg.AccessTokenTTL(),
		BcryptCost: cfg.Auth.BcryptCost,
	}, logger.Component(log, "tokens"))
	if err != nil {
		return nil, err
	}

	v := validation.New()
	a.auth = service.NewAuthService(store.Principals(), tokens, revoked, v, logger.Component(log, "auth"))

	a.engines, err = newEngines(ctx, store, v, logger.Component(log, "resources"))
	if err != nil {
		return nil, fmt.Errorf("open resource stores: %w", err)
	}

	a.gateway = service.NewAIGateway(a.generativeBackend(), cfg.AI.Timeout, logger.Component(log, "ai"))
	log.Info().Str("mode", a.gateway.Mode()).Msg("ai gateway ready")

	bg, stop := context.WithCancel(context.Background())
	a.stop = stop
	var limiter *middleware.RateLimiter
	if cfg.AI.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.AI.RateLimitRPS, cfg.AI.RateLimitBurst)
		limiter.StartCleanup(bg, limiterCleanupInterval)
	}

	routes := []handler.Routes{handler.NewAuthHandler(a.auth, logger.Component(log, "auth"))}
	routes = append(routes, a.engines.Routes()...)
	routes = append(routes,
		handler.NewStatsHandler(service.NewStatsService(a.engines.statsSources())),
		handler.NewAIHandler(a.gateway, middleware.OptionalAuth(a.auth), limiter, logger.Component(log, "ai")),
	)

	a.echo = api.NewRouter(api.Deps{
		Logger:         log,
		Validator:      v,
		Authenticator:  a.auth,
		AllowedOrigins: cfg.AllowedOrigins(),
		Health:         handler.NewHealthHandler(checks, logger.Component(log, "health")),
		Routes:         routes,
	})
	return a, nil
}

// revocationStore uses Redis when REDIS_ADDR is set and an in-process list otherwise.
func (a *App) revocationStore(ctx context.Context, checks map[string]handler.Pinger) (ports.RevocationStore, error) {
	if a.cfg.Redis.Addr == "" {
		s := memory.NewRevocationStore()
		a.closers = append(a.closers, func(context.Context) error { s.Close(); return nil })
		return s, nil
	}

	client, err := redisstore.Connect(ctx, redisstore.Config{Addr: a.cfg.Redis.Addr, DB: a.cfg.Redis.DB})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })
	checks["redis"] = redisstore.Pinger{Client: client}
	a.logger.Info().Str("addr", a.cfg.Redis.Addr).Msg("token revocation backed by redis")
	return redisstore.NewRevocationStore(client), nil
}

func (a *App) generativeBackend() ports.GenerativeBackend {
	if service.IsPlaceholderKey(a.cfg.AI.APIKey) {
		a.logger.Warn().Msg("GEMINI_API_KEY is not configured, AI features return mock responses")
		return service.NewMockBackend()
	}
	return genai.NewClient(genai.Config{
		APIKey:  a.cfg.AI.APIKey,
		Model:   a.cfg.AI.Model,
		BaseURL: a.cfg.AI.BaseURL,
		Timeout: a.cfg.AI.Timeout,
	}, logger.Component(a.logger, "gemini"))
}

func (a *App) Handler() http.Handler { return a.echo }

func (a *App) Engines() *Engines { return a.engines }

func (a *App) Auth() *service.AuthService { return a.auth }

// Start blocks serving HTTP until Shutdown is called.
func (a *App) Start() error {
	addr := ":" + a.cfg.Port
	a.logger.Info().Str("addr", addr).Str("env", a.cfg.Env).Msg("server listening")
	if err := a.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, then releases every backend.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.echo != nil {
		if err := a.echo.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if err := a.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Close releases backends in reverse order of opening. Safe to call twice.
func (a *App) Close(ctx context.Context) error {
	if a.stop != nil {
		a.stop()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
