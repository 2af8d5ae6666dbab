package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"furniture-storefront/internal/session"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	sessions   session.Store
}

// New builds a Server with the storefront routes.
func New(addr string, logger *log.Logger, sessions session.Store, deps Deps, corsOrigins []string) (*Server, error) {
	router := buildRouter(logger, sessions, deps, corsOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		sessions:   sessions,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
