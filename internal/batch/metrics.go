package batch

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	linesCounter metric.Int64Counter
	errorCounter metric.Int64Counter
)

// InitMetrics registers custom OTel metric instruments for the batch domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("batch")

	var err error

	opsCounter, err = meter.Int64Counter("batch.operations.total",
		metric.WithDescription("Total number of batch conversion requests"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("batch.operation.duration",
		metric.WithDescription("Duration of batch conversions in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.5, 1, 5, 10, 50, 100, 500, 1000, 5000),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	linesCounter, err = meter.Int64Counter("batch.lines.total",
		metric.WithDescription("Total number of processed batch lines by outcome"),
		metric.WithUnit("{line}"),
	)
	if err != nil {
		return fmt.Errorf("creating lines counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("batch.errors.total",
		metric.WithDescription("Total number of failed batch requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
