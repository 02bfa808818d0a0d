package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Label values shared by the use case decorators.
const (
	DomainEnigma = "enigma"

	OperationSessionRun  = "session_run"
	OperationEncryptText = "encrypt_text"
	OperationKeystroke   = "keystroke"

	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusFor maps an operation result to its status label.
func StatusFor(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// BusinessMetrics records counts and durations of cipher operations.
type BusinessMetrics interface {
	// RecordOperation counts one operation. Domain is "enigma"; operations are
	// "session_run", "encrypt_text" and "keystroke"; status is "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes an operation duration in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewBusinessMetrics creates the operation counter and duration histogram, both prefixed with
// namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of cipher operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	// Keystrokes take microseconds while sessions last minutes.
	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of cipher operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.001, 0.01, 0.1, 1, 10, 60, 300, 1800),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, metric.WithAttributes(labels(domain, operation, status)...))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), metric.WithAttributes(labels(domain, operation, status)...))
}

func labels(domain, operation, status string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	}
}

// NoOpBusinessMetrics discards every measurement. Used when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

// RecordDuration does nothing.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}
