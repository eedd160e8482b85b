// Package server exposes a graph and its shortest-path queries over HTTP.
//
// Routes:
//
//	GET  /graph-info         - file, node and edge counts of the served graph
//	POST /load-graph         - JSON {"file_name": ...} or a raw graph document
//	POST /reload-graph       - re-read the file the graph was loaded from
//	GET  /get-node/:node     - outgoing neighbors and weights of a node
//	GET  /get-edge/:u/:v     - weight of one edge
//	POST /find-path          - least-cost path, optional annex and turn penalty
//	GET  /healthz            - liveness
//	GET  /metrics            - Prometheus metrics
//
// Errors are JSON ErrorResponse bodies.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Options configures a Server. The zero value serves an empty graph.
type Options struct {
	// GraphFile is loaded by New when set.
	GraphFile string

	// TurnPenalty is the default applied to queries that do not set one.
	TurnPenalty float64

	// MaxBodyBytes caps request bodies. Zero means 64 MiB.
	MaxBodyBytes int64

	// ReadTimeout bounds reading a request in Serve. Zero means no limit.
	ReadTimeout time.Duration

	// ServiceName labels spans from the tracing middleware.
	ServiceName string

	// Logger receives request logs. Nil means slog.Default().
	Logger *slog.Logger

	// Registry collects the server metrics and backs /metrics.
	// Nil means a fresh registry owned by the server.
	Registry *prometheus.Registry
}

// Server routes HTTP requests to a Store.
type Server struct {
	store       *Store
	logger      *slog.Logger
	metrics     *metrics
	registry    *prometheus.Registry
	router      *gin.Engine
	turnPenalty float64
	maxBody     int64
	readTimeout time.Duration
}

// New builds a Server, loading opts.GraphFile if set.
func New(opts Options) (*Server, error) {
	if opts.TurnPenalty < 0 {
		return nil, fmt.Errorf("server: negative turn penalty %v", opts.TurnPenalty)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 << 20
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "dijkstar"
	}

	s := &Server{
		store:       NewStore(),
		logger:      opts.Logger,
		metrics:     newMetrics(opts.Registry),
		registry:    opts.Registry,
		turnPenalty: opts.TurnPenalty,
		maxBody:     opts.MaxBodyBytes,
		readTimeout: opts.ReadTimeout,
	}

	if opts.GraphFile != "" {
		info, err := s.store.LoadFile(opts.GraphFile)
		if err != nil {
			return nil, err
		}
		s.metrics.setGraph(info)
		s.logger.Info("Graph loaded", "file", info.File, "nodes", info.NodeCount, "edges", info.EdgeCount)
	}

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(opts.ServiceName), s.requestMiddleware())
	RegisterRoutes(router, s)
	s.router = router

	return s, nil
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler { return s.router }

// Store returns the graph store behind the server.
func (s *Server) Store() *Store { return s.store }

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}

	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully, waiting at most shutdownTimeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("Serving", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	s.logger.Info("Server stopped")

	return nil
}
