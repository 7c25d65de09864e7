package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arenadash/internal/application"
	"arenadash/internal/models"
	"arenadash/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

type fakeDashboard struct {
	snapshot *application.Snapshot
	err      error
}

func (f *fakeDashboard) Refresh(context.Context) (*application.Snapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeDashboard) RunMissing(context.Context) (*application.Snapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeDashboard) Current() *application.Snapshot {
	return f.snapshot
}

func (f *fakeDashboard) ExcelReport(context.Context) ([]byte, error) {
	return []byte("xlsx"), f.err
}

func newTestServer(t *testing.T, dashboard application.DashboardService) http.Handler {
	t.Helper()
	cfg := &config.Config{HTTPPort: "0"}
	srv := NewServer(cfg, &application.Service{Dashboard: dashboard}, nopLogger{})
	require.NoError(t, srv.Init())
	return srv.srv.Handler
}

func TestSnapshotBeforeFirstCycle(t *testing.T) {
	handler := newTestServer(t, &fakeDashboard{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSnapshotReturnsCurrent(t *testing.T) {
	handler := newTestServer(t, &fakeDashboard{snapshot: &application.Snapshot{Games: make([]models.Game, 3)}})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap application.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.Games, 3)
}

func TestRefreshConflictsWhileCycleRuns(t *testing.T) {
	handler := newTestServer(t, &fakeDashboard{err: application.ErrCycleInFlight})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRunMissingRequiresPost(t *testing.T) {
	handler := newTestServer(t, &fakeDashboard{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/run-missing", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReportDownload(t *testing.T) {
	handler := newTestServer(t, &fakeDashboard{snapshot: &application.Snapshot{}})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report.xlsx", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "results.xlsx")
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(t, &fakeDashboard{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
