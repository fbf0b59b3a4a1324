package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/api/metrics"
	"github.com/nexushealth/hms-api/internal/api/middleware"
	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Register mounts the auth routes. authn guards the routes that need a caller.
func (h *AuthHandler) Register(g *echo.Group, authn echo.MiddlewareFunc) {
	a := g.Group("/auth")
	a.POST("/register", h.SignUp)
	a.POST("/login", h.Login)
	a.GET("/me", h.Me, authn)
	a.POST("/logout", h.Logout, authn)
}

// SignUp creates a principal and returns a session token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterInput  true  "User registration details"
// @Success      201   {object}  domain.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req ports.RegisterInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}
	metrics.AuthEventsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusCreated, res)
}

// Login exchanges credentials for a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.LoginInput  true  "Login credentials"
// @Success      200   {object}  domain.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}
	metrics.AuthEventsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, res)
}

// Me returns the caller's profile.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, p)
}

// Logout revokes the presented token until it would have expired.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	if err := h.authService.Logout(c.Request().Context(), s); err != nil {
		metrics.AuthEventsTotal.WithLabelValues("logout", "failure").Inc()
		return err
	}
	metrics.AuthEventsTotal.WithLabelValues("logout", "success").Inc()
	h.logger.Info().Str("user_id", s.Subject).Msg("session revoked")
	return c.NoContent(http.StatusNoContent)
}
