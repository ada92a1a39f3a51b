package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isj-group4/fingerprint-attendance-go/internal/config"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/attendance"
	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/staff"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/clock"
	"github.com/isj-group4/fingerprint-attendance-go/internal/pkg/jwt"
	"github.com/isj-group4/fingerprint-attendance-go/internal/repository/memory"
	attendanceService "github.com/isj-group4/fingerprint-attendance-go/internal/service/attendance"
	reportService "github.com/isj-group4/fingerprint-attendance-go/internal/service/report"
	statsService "github.com/isj-group4/fingerprint-attendance-go/internal/service/stats"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testEnv struct {
	router     http.Handler
	jwtService jwt.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:4200"

	threshold, err := attendance.ParseTimeOfDay("09:00:00")
	require.NoError(t, err)

	attendanceRepo := memory.NewAttendanceRepository(time.Second)
	staffRepo := memory.NewStaffRepository([]staff.Profile{
		{ID: 1, Name: "Ana", Surname: "Silva", Active: true, DepartmentID: 10, DepartmentName: "Engineering"},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	engineClock := clock.Fixed(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo, threshold, 2*time.Second, logger)
	statsSvc := statsService.NewStatsService(attendanceRepo, staffRepo, threshold, engineClock)
	reportSvc := reportService.NewReportService(statsSvc, engineClock)

	router := NewRouter(
		cfg,
		jwtService,
		NewAttendanceHandler(attendanceSvc),
		NewStaffHandler(staffRepo),
		NewStatsHandler(statsSvc),
		NewReportHandler(reportSvc),
	)
	return &testEnv{router: router, jwtService: jwtService}
}

func (e *testEnv) deviceToken(t *testing.T, verified bool) string {
	t.Helper()
	token, _, err := e.jwtService.GenerateDeviceToken("terminal-1", verified)
	require.NoError(t, err)
	return token
}

func (e *testEnv) record(t *testing.T, token string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/record", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rr)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected error envelope, got %s", rr.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

func TestRecordEndpoint_FullDay(t *testing.T) {
	env := newTestEnv(t)
	token := env.deviceToken(t, true)

	rr := env.record(t, token, map[string]interface{}{
		"staffId":        1,
		"attendanceDate": "2026-03-10",
		"attendanceTime": "2026-03-10T08:00:00",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	body := decodeBody(t, rr)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ARRIVAL_RECORDED", data["status"])
	assert.Equal(t, "Ana Silva", data["staffName"])
	assert.Equal(t, false, data["isLate"])

	rr = env.record(t, token, map[string]interface{}{
		"staffId":        1,
		"attendanceDate": "2026-03-10",
		"attendanceTime": "2026-03-10T16:05:00",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	data = decodeBody(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, "DEPARTURE_RECORDED", data["status"])
	assert.Equal(t, 8.1, data["hoursWorked"])

	rr = env.record(t, token, map[string]interface{}{
		"staffId":        1,
		"attendanceDate": "2026-03-10",
		"attendanceTime": "2026-03-10T18:00:00",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "DUPLICATE_EVENT", errorCode(t, rr))
}

func TestRecordEndpoint_ErrorMapping(t *testing.T) {
	env := newTestEnv(t)
	token := env.deviceToken(t, true)

	rr := env.record(t, token, map[string]interface{}{
		"staffId":        99,
		"attendanceDate": "2026-03-10",
		"attendanceTime": "2026-03-10T08:00:00",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "INVALID_STAFF", errorCode(t, rr))

	rr = env.record(t, token, map[string]interface{}{
		"staffId":        1,
		"attendanceDate": "bad-date",
		"attendanceTime": "2026-03-10T08:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "MALFORMED_INPUT", errorCode(t, rr))
}

func TestRecordEndpoint_RequiresBiometricClaim(t *testing.T) {
	env := newTestEnv(t)

	rr := env.record(t, env.deviceToken(t, false), map[string]interface{}{
		"staffId":        1,
		"attendanceDate": "2026-03-10",
		"attendanceTime": "2026-03-10T08:00:00",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/record", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatsAndReportEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.deviceToken(t, true)

	rr := env.record(t, token, map[string]interface{}{
		"staffId":        1,
		"attendanceDate": "2026-03-10",
		"attendanceTime": "2026-03-10T09:30:00",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	get := func(path, tok string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	rec := get("/api/v1/stats/daily?date=2026-03-10", token)
	require.Equal(t, http.StatusOK, rec.Code)
	daily := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), daily["presentCount"])
	assert.Equal(t, float64(1), daily["lateCount"])
	assert.Equal(t, 100.0, daily["attendanceRate"])

	adminToken, _, err := env.jwtService.GenerateAdminToken("admin@example.test")
	require.NoError(t, err)

	rec = get("/api/v1/reports/monthly?month=3&year=2026&format=csv", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance-2026-03.csv")
	assert.Contains(t, rec.Body.String(), "Name,Department,DaysPresent")

	// The reporting surface is admin only.
	rec = get("/api/v1/reports/monthly?month=3&year=2026", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
