package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nexushealth/hms-api/internal/api/handler"
	"github.com/nexushealth/hms-api/internal/core/domain"
)

type stubStats struct {
	stats *domain.DashboardStats
	err   error
}

func (s stubStats) Dashboard(context.Context) (*domain.DashboardStats, error) {
	return s.stats, s.err
}

func newStatsServer(s stubStats) *echo.Echo {
	return newTestServer(&stubAuthService{principals: testCallers}, func(g *echo.Group, authn echo.MiddlewareFunc) {
		handler.NewStatsHandler(s).Register(g, authn)
	})
}

func TestStatsHandler_Dashboard(t *testing.T) {
	e := newStatsServer(stubStats{stats: &domain.DashboardStats{TotalPatients: 5, TotalRevenue: 1250.5, OccupiedBeds: 2}})

	rec := doJSON(e, http.MethodGet, "/api/stats", "", "nurse")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decodeJSON[map[string]float64](t, rec)
	if got["total_patients"] != 5 || got["total_revenue"] != 1250.5 || got["occupied_beds"] != 2 {
		t.Fatalf("unexpected stats %+v", got)
	}
	if _, ok := got["active_ambulances"]; !ok {
		t.Fatalf("zero counters must still be present: %+v", got)
	}
}

func TestStatsHandler_RequiresCaller(t *testing.T) {
	e := newStatsServer(stubStats{stats: &domain.DashboardStats{}})

	rec := doJSON(e, http.MethodGet, "/api/stats", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	assertErrorBody(t, rec, "not authenticated")
}

func TestStatsHandler_StorageFailureIsOpaque(t *testing.T) {
	e := newStatsServer(stubStats{err: errors.New("stats: patients: connection refused")})

	rec := doJSON(e, http.MethodGet, "/api/stats", "", "admin")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	assertErrorBody(t, rec, "internal server error")
}
