// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/enigma/internal/config"
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	enigmaService "github.com/allisson/enigma/internal/enigma/service"
	enigmaUsecase "github.com/allisson/enigma/internal/enigma/usecase"
	"github.com/allisson/enigma/internal/http"
	"github.com/allisson/enigma/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config    *config.Config
	logOutput io.Writer

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services and use cases
	machineBuilder enigmaService.MachineBuilder
	sessionUseCase enigmaUsecase.SessionUseCase

	// Servers
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	machineBuilderInit  sync.Once
	sessionUseCaseInit  sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// Option customizes a Container.
type Option func(*Container)

// WithLogOutput sends log records to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(c *Container) {
		c.logOutput = w
	}
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config, opts ...Option) *Container {
	c := &Container{
		config:     cfg,
		logOutput:  os.Stderr,
		initErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// Records go to stderr so that stdout carries only cipher output.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DefaultSettings converts the configured default machine settings.
func (c *Container) DefaultSettings() (enigmaDomain.Settings, error) {
	req := c.config.DefaultSettingsRequest()
	settings, err := req.ToDomain()
	if err != nil {
		return enigmaDomain.Settings{}, fmt.Errorf("invalid default enigma settings: %w", err)
	}
	return settings, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// MachineBuilder returns the builder used to assemble one machine per session.
func (c *Container) MachineBuilder() enigmaService.MachineBuilder {
	c.machineBuilderInit.Do(func() {
		c.machineBuilder = enigmaService.NewMachineBuilder()
	})
	return c.machineBuilder
}

// SessionUseCase returns the session use case, decorated with metrics when enabled.
func (c *Container) SessionUseCase() (enigmaUsecase.SessionUseCase, error) {
	var err error
	c.sessionUseCaseInit.Do(func() {
		c.sessionUseCase, err = c.initSessionUseCase()
		if err != nil {
			c.setInitError("sessionUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("sessionUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// MetricsServer returns the metrics HTTP server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.setInitError("metricsServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return bm, nil
}

// initSessionUseCase creates the session use case with all its dependencies.
func (c *Container) initSessionUseCase() (enigmaUsecase.SessionUseCase, error) {
	useCase := enigmaUsecase.NewSessionUseCase(c.MachineBuilder(), c.Logger())
	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
	}
	return enigmaUsecase.NewSessionUseCaseWithMetrics(useCase, bm), nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	var opts []http.MetricsServerOption
	if c.config.RateLimitEnabled {
		opts = append(opts, http.WithRateLimit(c.config.RateLimitRequestsPerSec, c.config.RateLimitBurst))
	}

	server := http.NewMetricsServer(
		c.config.MetricsHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
		opts...,
	)
	return server, nil
}
