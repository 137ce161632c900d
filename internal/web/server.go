package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr        string
	TemplatesFS fs.FS
	StaticFS    fs.FS
	Views       ViewRouter
	Predictor   Predictor
}

// Server is the HTTP server for the dashboard.
type Server struct {
	router    chi.Router
	server    *http.Server
	templates *Templates
	handlers  *Handlers
}

// NewServer creates a new web server.
func NewServer(cfg ServerConfig) (*Server, error) {
	templates, err := NewTemplates(cfg.TemplatesFS)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	router := chi.NewRouter()

	s := &Server{
		router:    router,
		templates: templates,
		handlers:  NewHandlers(templates, cfg.Views, cfg.Predictor),
	}

	s.setupMiddleware()
	s.setupRoutes(cfg.StaticFS)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes(staticFS fs.FS) {
	fileServer := http.FileServer(http.FS(staticFS))
	s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	s.router.Get("/", s.handlers.Home)

	// HTMX fragments
	s.router.Get("/view", s.handlers.View)
	s.router.Post("/predict", s.handlers.Predict)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	slog.Info("Starting server", "url", "http://"+s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
