package history

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	sizeGauge    metric.Int64Gauge
	errorCounter metric.Int64Counter
)

// InitMetrics registers custom OTel metric instruments for the history
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("history")

	var err error

	opsCounter, err = meter.Int64Counter("history.operations.total",
		metric.WithDescription("Total number of history requests by operation"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("history.operation.duration",
		metric.WithDescription("Duration of history operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	sizeGauge, err = meter.Int64Gauge("history.records",
		metric.WithDescription("Records held by the conversion log after the last operation"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return fmt.Errorf("creating size gauge: %w", err)
	}

	errorCounter, err = meter.Int64Counter("history.errors.total",
		metric.WithDescription("Total number of failed history requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
