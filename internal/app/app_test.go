package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/infrastructure/config"
)

func newTestApp(t *testing.T, env map[string]string) *App {
	t.Helper()
	ctx := context.Background()
	if env == nil {
		env = map[string]string{}
	}
	if _, ok := env["BCRYPT_COST"]; !ok {
		env["BCRYPT_COST"] = "4"
	}
	cfg, err := config.LoadFrom(ctx, env)
	require.NoError(t, err)

	a, err := New(ctx, *cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

func call(t *testing.T, a *App, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestApp_SessionLifecycle(t *testing.T) {
	a := newTestApp(t, nil)

	rec := call(t, a, http.MethodPost, "/api/auth/register",
		`{"name":"Nurse Joy","email":"joy@nexushealth.com","password":"s3cret","role":"Nurse"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, a, http.MethodPost, "/api/auth/login", `{"email":"joy@nexushealth.com","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session := decode[domain.AuthResult](t, rec)
	require.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "bearer", strings.ToLower(session.TokenType))

	rec = call(t, a, http.MethodGet, "/api/auth/me", "", session.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[domain.Principal](t, rec)
	assert.Equal(t, "joy@nexushealth.com", me.Email)
	assert.Equal(t, domain.RoleNurse, me.Role)

	rec = call(t, a, http.MethodPost, "/api/auth/logout", "", session.AccessToken)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, a, http.MethodGet, "/api/auth/me", "", session.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApp_ResourcesFeedStats(t *testing.T) {
	a := newTestApp(t, nil)

	rec := call(t, a, http.MethodPost, "/api/auth/register",
		`{"name":"Front Desk","email":"desk@nexushealth.com","password":"s3cret","role":"Receptionist"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	token := decode[domain.AuthResult](t, rec).AccessToken

	rec = call(t, a, http.MethodPost, "/api/appointments",
		`{"patient_name":"Mike Ross","doctor_name":"Dr. Smith","time":"10:30 AM","date":"Today","type":"Tele-Consult"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	appt := decode[domain.Appointment](t, rec)
	assert.True(t, strings.HasPrefix(appt.ID, "APT-"))

	rec = call(t, a, http.MethodGet, "/api/stats", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[domain.DashboardStats](t, rec)
	assert.Equal(t, 1, stats.TotalAppointments)
	assert.Zero(t, stats.TotalPatients)

	rec = call(t, a, http.MethodGet, "/api/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApp_SeedIsIdempotent(t *testing.T) {
	a := newTestApp(t, nil)
	ctx := context.Background()

	first, err := a.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 88, first.Inserted)
	assert.Zero(t, first.Skipped)

	second, err := a.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Inserted)
	assert.Equal(t, first.Inserted, second.Skipped)

	rec := call(t, a, http.MethodPost, "/api/auth/login", `{"email":"admin@nexushealth.com","password":"admin123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session := decode[domain.AuthResult](t, rec)
	assert.Equal(t, "admin-001", session.User.ID)

	rec = call(t, a, http.MethodGet, "/api/stats/", "", session.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DashboardStats{
		TotalPatients:     5,
		TotalAppointments: 3,
		TotalRevenue:      450,
		PendingRevenue:    1250,
		TotalStaff:        6,
		AvailableBeds:     8,
		OccupiedBeds:      3,
		PendingLabs:       2,
		ActiveAmbulances:  1,
	}, decode[domain.DashboardStats](t, rec))

	rec = call(t, a, http.MethodGet, "/api/beds/B-2", "", session.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	bed := decode[domain.Bed](t, rec)
	require.NotNil(t, bed.PatientName)
	assert.Equal(t, "John Doe", *bed.PatientName)
	assert.Equal(t, "ICU-2", bed.Number)
}

func TestApp_AIFallsBackToMock(t *testing.T) {
	a := newTestApp(t, map[string]string{"GEMINI_API_KEY": "PLACEHOLDER_API_KEY"})

	rec := call(t, a, http.MethodGet, "/api/ai/status", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"mock"}`, rec.Body.String())

	rec = call(t, a, http.MethodPost, "/api/ai/triage",
		`{"patient_name":"Michael Chen","symptoms":["chest pain","shortness of breath"],"age":58}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[domain.AIResult](t, rec)
	assert.Equal(t, domain.AIStatusMock, res.Status)
	assert.NotEmpty(t, res.Response)
}

func TestNew_RejectsUnknownDatabaseScheme(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), map[string]string{"DATABASE_URL": "mysql://localhost/hms"})
	require.NoError(t, err)

	_, err = New(context.Background(), *cfg, zerolog.Nop())
	require.Error(t, err)
}
