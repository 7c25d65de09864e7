package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"arenadash/internal/application"
	"arenadash/pkg/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Server exposes the last cycle's snapshot and the two manual triggers the
// old dashboard buttons mapped to.
type Server struct {
	dashboard application.DashboardService
	logger    application.Logger
	port      string
	srv       *http.Server
}

func NewServer(cfg *config.Config, services *application.Service, logger application.Logger) *Server {
	return &Server{
		dashboard: services.Dashboard,
		logger:    logger,
		port:      cfg.HTTPPort,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	api.HandleFunc("/report.xlsx", s.handleReport).Methods(http.MethodGet)
	api.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/run-missing", s.handleRunMissing).Methods(http.MethodPost)

	s.srv = &http.Server{
		Addr:              ":" + s.port,
		Handler:           cors.AllowAll().Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

func (s *Server) Run(_ context.Context) {
	s.logger.Info("http api listening", "port", s.port)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http api stopped", "error", err.Error())
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("http api shutdown", "error", err.Error())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	snap := s.dashboard.Current()
	if snap == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no cycle has completed yet"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dashboard.Refresh(r.Context())
	if err != nil {
		writeCycleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRunMissing(w http.ResponseWriter, r *http.Request) {
	snap, err := s.dashboard.RunMissing(r.Context())
	if err != nil {
		writeCycleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.dashboard.ExcelReport(r.Context())
	if err != nil {
		writeCycleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
	_, _ = w.Write(report)
}

func writeCycleError(w http.ResponseWriter, err error) {
	if errors.Is(err, application.ErrCycleInFlight) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
}
