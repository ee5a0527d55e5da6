// Package server exposes the run engine over HTTP.
//
// Routes:
//
//	GET  /algorithms        registered algorithms in listing order
//	POST /run?algorithm=K   sort the array in the body, return the trace
//	GET  /generate          count distinct integers from 1..max
//	GET  /runs/:id          a recorded run (requires a run log)
//	GET  /health            liveness, and run log reachability
//	GET  /metrics           prometheus exposition
//
// Error bodies are {"error": "..."}; a failed run never returns partial
// steps.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/config"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/input"
)

const runIDHeader = "X-Run-Id"

// shutdownTimeout bounds graceful shutdown in Run.
const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end of an engine.
type Server struct {
	engine  *engine.Engine
	cfg     config.ServerConfig
	logger  *slog.Logger
	metrics *Metrics

	rngMu sync.Mutex
	rng   *rand.Rand

	router *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithMetrics records run metrics and serves them on /metrics. The same
// Metrics' Tap should be installed on the engine for operation counts.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithRand sets the generator behind /generate.
func WithRand(rng *rand.Rand) Option {
	return func(s *Server) {
		s.rng = rng
	}
}

// New builds a Server and its routes.
func New(eng *engine.Engine, cfg config.ServerConfig, opts ...Option) *Server {
	s := &Server{
		engine: eng,
		cfg:    cfg,
		logger: slog.Default(),
		rng:    input.NewRand(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	s.router = s.routes()
	return s
}

// Handler returns the gin router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), requestLogger(s.logger), cors(s.cfg.AllowedOrigin))

	r.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "Not Found")
	})

	r.GET("/algorithms", s.handleAlgorithms)
	r.POST("/run", s.handleRun)
	r.GET("/generate", s.handleGenerate)
	r.GET("/runs/:id", s.handleGetRun)
	r.GET("/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))

	return r
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
