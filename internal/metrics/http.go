package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type httpMetrics struct {
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
}

func newHTTPMetrics(meterProvider metric.MeterProvider, namespace string) (*httpMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests served by the metrics server"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http duration histogram: %w", err)
	}

	return &httpMetrics{
		requestCounter: requestCounter,
		durationHisto:  durationHisto,
	}, nil
}

// HTTPMetricsMiddleware returns a Gin middleware that counts requests and observes their
// duration, labelled by method, route and status code. If the instruments cannot be created
// the middleware passes requests through unrecorded.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	m, err := newHTTPMetrics(meterProvider, namespace)
	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", routeLabel(c.FullPath())),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		)
		m.requestCounter.Add(c.Request.Context(), 1, attrs)
		m.durationHisto.Record(c.Request.Context(), time.Since(start).Seconds(), attrs)
	}
}

// routeLabel keeps scrapes of unknown paths from creating one series per path.
func routeLabel(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}
