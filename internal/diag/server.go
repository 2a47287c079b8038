// Package diag exposes the operator-only diagnostics endpoints
// (/healthz, /metrics). It is observability plumbing, not a query
// transport: the assistant itself answers only over the interactive
// session. The server is disabled unless an address is configured.
package diag

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kjstillabower/air-quality-assistant/internal/observability"
)

// Server is the optional diagnostics HTTP listener.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New builds the diagnostics server on addr.
func New(addr string, logger *zap.Logger) *Server {
	router := mux.NewRouter()
	router.Handle("/metrics", observability.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving in the background. Listen failures are logged,
// not fatal; diagnostics must never take the assistant down.
func (s *Server) Start() {
	go func() {
		s.logger.Info("diagnostics server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("diagnostics server", zap.Error(err))
		}
	}()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
