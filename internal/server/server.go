// Package server implements the plotdeck render API.
//
// The server exposes the chart pipeline over HTTP: datasets are posted
// inline, rendered through the shared Runner, and recorded in the chart
// store for later retrieval.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/plotdeck/pkg/pipeline"
	"github.com/matzehuels/plotdeck/pkg/store"
)

// Config configures the render server.
type Config struct {
	Addr   string
	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger

	// ShutdownTimeout bounds graceful shutdown. Zero means 10 seconds.
	ShutdownTimeout time.Duration
}

// Server serves the render API.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	http   *http.Server
}

// New creates a server. Runner must be set; Store defaults to an
// in-memory store and Logger to the package default.
func New(cfg Config) *Server {
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		cfg:    cfg,
		runner: cfg.Runner,
		store:  cfg.Store,
		logger: cfg.Logger,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Routes builds the router. Exposed for tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/charts", s.handleListCharts)
		r.Get("/charts/{id}", s.handleGetChart)
		r.Delete("/charts/{id}", s.handleDeleteChart)
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
