package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/enigma/internal/metrics"
)

var errMetricsServerNotListening = errors.New("metrics server is not listening")

// MetricsServerOption configures optional MetricsServer behavior.
type MetricsServerOption func(*metricsServerOptions)

type metricsServerOptions struct {
	rateLimitRPS   float64
	rateLimitBurst int
}

// WithRateLimit enables per-IP rate limiting. A non-positive rps leaves it disabled.
func WithRateLimit(rps float64, burst int) MetricsServerOption {
	return func(o *metricsServerOptions) {
		o.rateLimitRPS = rps
		o.rateLimitBurst = burst
	}
}

// MetricsServer represents the HTTP server for Prometheus metrics.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewMetricsServer creates a new MetricsServer. The /metrics route is only registered when
// metricsProvider is not nil; /healthz is always served.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	opts ...MetricsServerOption,
) *MetricsServer {
	var o metricsServerOptions
	for _, opt := range opts {
		opt(&o)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	if o.rateLimitRPS > 0 {
		router.Use(RateLimitMiddleware(o.rateLimitRPS, o.rateLimitBurst, logger))
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}
	router.GET("/healthz", healthHandler)

	return &MetricsServer{
		server: &http.Server{
			Addr:         net.JoinHostPort(host, fmt.Sprint(port)),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Addr returns the bound address once Start is listening, or the configured one before.
func (s *MetricsServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Listen binds the configured address. Calling it before Serve reports a busy port before
// anything else starts.
func (s *MetricsServer) Listen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return nil
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	s.listener = ln
	return nil
}

// Serve serves on the listener bound by Listen until Shutdown is called. It returns nil
// after a clean shutdown.
func (s *MetricsServer) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return errMetricsServerNotListening
	}

	s.logger.Info("starting metrics server", slog.String("addr", ln.Addr().String()))

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve metrics: %w", err)
	}

	return nil
}

// Start listens and serves until Shutdown is called. It returns nil after a clean shutdown.
func (s *MetricsServer) Start(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown gracefully shuts down the metrics HTTP server. A listener bound by Listen but
// never served is closed as well.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	err := s.server.Shutdown(ctx)

	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln != nil {
		if closeErr := ln.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) && err == nil {
			err = closeErr
		}
	}
	return err
}
