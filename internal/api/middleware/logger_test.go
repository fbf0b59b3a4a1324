package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestLogger_WritesRequestEntry(t *testing.T) {
	var buf bytes.Buffer
	mw := Logger(zerolog.New(&buf))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/beds", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")
	c.Set(KeyUserID, "admin-001")

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log entry is not json: %q", buf.String())
	}
	if entry["level"] != "warn" || entry["status"] != float64(404) {
		t.Fatalf("unexpected level/status: %+v", entry)
	}
	if entry["request_id"] != "req-1" || entry["user_id"] != "admin-001" || entry["path"] != "/api/beds" {
		t.Fatalf("unexpected fields: %+v", entry)
	}
}
