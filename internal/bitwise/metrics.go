package bitwise

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
)

// InitMetrics registers custom OTel metric instruments for the bitwise
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("bitwise")

	var err error

	opsCounter, err = meter.Int64Counter("bitwise.operations.total",
		metric.WithDescription("Total number of bitwise computation requests"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("bitwise.operation.duration",
		metric.WithDescription("Duration of bitwise computations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("bitwise.errors.total",
		metric.WithDescription("Total number of failed bitwise requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
