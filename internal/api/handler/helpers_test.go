package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/api"
	"github.com/nexushealth/hms-api/internal/api/handler"
	"github.com/nexushealth/hms-api/internal/api/middleware"
	"github.com/nexushealth/hms-api/internal/pkg/validation"
)

// newTestServer mounts the auth routes plus whatever extra registers under /api,
// with the production error handler and validator.
func newTestServer(auth *stubAuthService, extra func(g *echo.Group, authn echo.MiddlewareFunc)) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.Validator = handler.NewValidator(validation.New())

	g := e.Group("/api")
	authn := middleware.Auth(auth)
	handler.NewAuthHandler(auth, zerolog.Nop()).Register(g, authn)
	if extra != nil {
		extra(g, authn)
	}
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	if body["error"] != want {
		t.Fatalf("expected error %q, got %q", want, body["error"])
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}
