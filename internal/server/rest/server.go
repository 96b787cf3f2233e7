// Package rest exposes the roster API over HTTP.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/logging"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/config"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	addr       string
	logger     logging.Logger
	auth       *services.AuthService
	activities *services.ActivityService
}

func NewServer(cfg *config.Config, logger logging.Logger, auth *services.AuthService, activities *services.ActivityService) *Server {
	return &Server{
		addr:       cfg.ListenAddr,
		logger:     logger,
		auth:       auth,
		activities: activities,
	}
}

// Router assembles the HTTP routes. Mutations sit behind the admin gate;
// the catalog and the session probe do not.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(withCORS)
	r.Use(s.requestLogger)

	r.Get("/activities", s.getActivities)
	r.Get("/auth/session", s.getSession)
	r.Post("/auth/login", s.login)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Post("/auth/logout", s.logout)
		r.Post("/activities/{name}/signup", s.signup)
		r.Delete("/activities/{name}/unregister", s.unregister)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
