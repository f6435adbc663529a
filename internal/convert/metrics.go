package convert

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	resultGauge  metric.Float64Gauge
	errorCounter metric.Int64Counter
)

// InitMetrics registers custom OTel metric instruments for the conversion
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("convert")

	var err error

	opsCounter, err = meter.Int64Counter("convert.operations.total",
		metric.WithDescription("Total number of conversion requests by operation"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("convert.operation.duration",
		metric.WithDescription("Duration of conversions in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("convert.result.digits",
		metric.WithDescription("Digit count of the most recent conversion result"),
		metric.WithUnit("{digit}"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	errorCounter, err = meter.Int64Counter("convert.errors.total",
		metric.WithDescription("Total number of failed conversion requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
