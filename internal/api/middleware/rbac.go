package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

// RBAC lets the request through only when the caller's role is one of allowed.
// It must run after Auth. An empty allowed list admits every authenticated caller.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(KeyRole).(domain.Role)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if len(set) == 0 {
				return next(c)
			}
			if _, ok := set[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
