// Package server exposes the simulation engine, the claim analyzer, and
// the live-audit store over HTTP as JSON request/response endpoints.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecosim/ecosim/internal/audit"
	"github.com/ecosim/ecosim/internal/config"
	"github.com/ecosim/ecosim/internal/logging"
	"github.com/ecosim/ecosim/internal/metrics"
)

// shutdownTimeout bounds graceful drain on Shutdown.
const shutdownTimeout = 10 * time.Second

// Server is the EcoSim HTTP API.
type Server struct {
	cfg     config.ServerConfig
	logger  zerolog.Logger
	metrics *metrics.Metrics
	store   *audit.Store

	httpServer *http.Server
}

// New builds a Server reading live audits from store.
func New(cfg config.ServerConfig, logger zerolog.Logger, store *audit.Store) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logging.ComponentLogger(logger, "server"),
		metrics: metrics.New(),
		store:   store,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ListenAndServe runs the server until it fails or Shutdown is called.
// A closed-server error is normalized to nil so callers can treat a
// clean shutdown as success.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Metrics exposes the server's collectors so the serve command can wire
// the audit pipeline into them.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	drainCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(drainCtx)
}
