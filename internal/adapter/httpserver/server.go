// Package httpserver exposes the service's operational surface for the
// long-running mode: liveness, extraction-run readiness, and Prometheus
// metrics.
package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readTimeout      = 10 * time.Second
	writeTimeout     = 10 * time.Second
	idleTimeout      = 90 * time.Second
	readinessTimeout = 2 * time.Second
)

// RunReporter reports extraction-run state. Readiness means at least one run
// has written a dataset; LastRun describes the most recent completed run.
type RunReporter interface {
	CheckReadiness(ctx context.Context) error
	LastRun() (at time.Time, datasetsWritten int)
}

// Server serves /healthz, /readyz, and /metrics.
type Server struct {
	httpServer *http.Server
	reporter   RunReporter
	logger     *slog.Logger
}

// NewServer builds the operational HTTP server around a run reporter.
func NewServer(addr string, reporter RunReporter, logger *slog.Logger) *Server {
	s := &Server{reporter: reporter, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
}

// handleReady answers with the last run's outcome alongside the readiness
// verdict, so an operator probing /readyz sees when the service last wrote
// datasets without scraping metrics.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	lastRun, written := s.reporter.LastRun()
	body := map[string]any{
		"status":           "ready",
		"datasets_written": written,
	}
	if !lastRun.IsZero() {
		body["last_run"] = lastRun.UTC().Format(time.RFC3339)
	}

	status := http.StatusOK
	if err := s.reporter.CheckReadiness(ctx); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "not ready"
		body["error"] = err.Error()
	}
	s.writeJSON(w, status, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("write response failed", "error", err)
	}
}
