package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

func rbacContext(role any) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if role != nil {
		c.Set(KeyRole, role)
	}
	return c
}

func TestRBAC_Allows(t *testing.T) {
	called := false
	handler := RBAC(domain.RoleAdmin, domain.RoleReceptionist)(func(c echo.Context) error {
		called = true
		return nil
	})

	if err := handler(rbacContext(domain.RoleReceptionist)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRBAC_Forbids(t *testing.T) {
	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(rbacContext(domain.RoleNurse)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_NoRoleMeansUnauthenticated(t *testing.T) {
	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error { return nil })

	if err := handler(rbacContext(nil)); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := handler(rbacContext("Admin")); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("untyped role string must not pass, got %v", err)
	}
}

func TestRBAC_EmptySetAdmitsAnyRole(t *testing.T) {
	handler := RBAC()(func(c echo.Context) error { return nil })
	if err := handler(rbacContext(domain.RoleStaff)); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}
