package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

// Context keys set by Auth and OptionalAuth.
const (
	KeyPrincipal = "principal"
	KeySession   = "session"
	KeyRole      = "role"
	KeyUserID    = "user_id"
)

// Auth rejects the request with ErrUnauthenticated unless the bearer token
// resolves to a live principal.
func Auth(authn ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return domain.ErrUnauthenticated
			}

			principal, session, err := authn.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			setCaller(c, principal, session)
			return next(c)
		}
	}
}

// OptionalAuth identifies the caller when it can and otherwise lets the request through anonymously.
func OptionalAuth(authn ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c); ok {
				if principal, session, err := authn.Authenticate(c.Request().Context(), token); err == nil {
					setCaller(c, principal, session)
				}
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller stored by Auth or OptionalAuth.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(KeyPrincipal).(*domain.Principal)
	return p, ok && p != nil
}

func SessionFrom(c echo.Context) (*domain.Session, bool) {
	s, ok := c.Get(KeySession).(*domain.Session)
	return s, ok && s != nil
}

func setCaller(c echo.Context, p *domain.Principal, s *domain.Session) {
	c.Set(KeyPrincipal, p)
	c.Set(KeySession, s)
	c.Set(KeyRole, p.Role)
	c.Set(KeyUserID, p.ID)
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
