// Package metrics wires OpenTelemetry instruments to a Prometheus registry. Session and text
// encryption use cases report through BusinessMetrics; the metrics HTTP server reports its own
// requests through HTTPMetricsMiddleware.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Provider owns the meter provider and the Prometheus registry it exports into.
type Provider struct {
	namespace     string
	meterProvider *metric.MeterProvider
	exporter      *promexporter.Exporter
	registry      *prometheus.Registry
}

// NewProvider creates a meter provider backed by a private Prometheus registry. Instrument
// names created through Meter are prefixed with namespace by their constructors.
func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Provider{
		namespace:     namespace,
		meterProvider: metric.NewMeterProvider(metric.WithReader(exporter)),
		exporter:      exporter,
		registry:      registry,
	}, nil
}

// Namespace returns the metric name prefix.
func (p *Provider) Namespace() string {
	return p.namespace
}

// Handler serves the registry in Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// MeterProvider returns the underlying OpenTelemetry meter provider.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Meter returns the meter scoped to the provider namespace.
func (p *Provider) Meter() otelmetric.Meter {
	return p.meterProvider.Meter(p.namespace)
}

// Shutdown flushes pending measurements and releases the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
