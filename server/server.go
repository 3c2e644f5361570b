package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Config struct {
	// Address is the host:port pair the server listens on.
	Address      string
	StatusPath   string
	MetricsPath  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps an http.Server hosting the status endpoint.
type Server struct {
	httpServer *http.Server
}

// New builds the router. The status handler only answers GET, other methods
// get the router's 405. Metrics are optional: with nil metrics neither the
// middleware nor the exposition route is installed.
func New(cfg Config, statusHandler http.Handler, metrics *Metrics) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	if metrics != nil {
		router.Use(metrics.Middleware)
	}

	router.Method(http.MethodGet, cfg.StatusPath, statusHandler)
	if metrics != nil && cfg.MetricsPath != "" {
		router.Method(http.MethodGet, cfg.MetricsPath, metrics.Handler())
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return &Server{httpServer: srv}
}

// Start blocks serving http traffic until the server is shut down.
func (s *Server) Start() error {
	log.Printf("server: Listening on [%s].", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for testing.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
