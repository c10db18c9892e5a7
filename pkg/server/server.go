// Package server exposes the stack size calculator over HTTP.
//
// # Endpoints
//
//	GET  /healthz          build info and cache reachability
//	POST /v1/compute       scenario in, rendered result out (?format=json|svg|text)
//	POST /v1/count         scenario in, max row count out
//	POST /v1/height        scenario with "count" in, height out
//	POST /v1/sweep         scenario in, count/height per budget out (?from=&to=&step=)
//	POST /v1/lockscreen    lock signals in, lock screen sizing flag out
//
// Request bodies are JSON. Scenarios are validated before the calculator
// runs; anything that still panics is answered with a coded JSON error.
//
// # Errors
//
// Every error response has the shape
//
//	{"code": "INVALID_BUDGET", "message": "...", "request_id": "..."}
//
// with the HTTP status derived from the code (see [StatusFor]).
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/pipeline"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes = 1 << 20

// shutdownTimeout is how long ListenAndServe waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to a pipeline runner.
type Server struct {
	runner       *pipeline.Runner
	resources    dimens.Resources
	maxBodyBytes int64
	logger       *log.Logger
	router       chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithResources sets the dimensions used for scenarios without explicit
// divider and gap heights.
func WithResources(r dimens.Resources) Option { return func(s *Server) { s.resources = r } }

// WithMaxBodyBytes limits request body size.
func WithMaxBodyBytes(n int64) Option { return func(s *Server) { s.maxBodyBytes = n } }

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// New creates a server around runner. A nil runner gets an uncached one.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:       runner,
		resources:    dimens.Defaults(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = DefaultMaxBodyBytes
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(s.recoverer)

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(s.limitBody)
		r.Post("/compute", s.handleCompute)
		r.Post("/count", s.handleCount)
		r.Post("/height", s.handleHeight)
		r.Post("/sweep", s.handleSweep)
		r.Post("/lockscreen", s.handleLockscreen)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenOptions configure ListenAndServe.
type ListenOptions struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, opts ListenOptions) error {
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           s,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
