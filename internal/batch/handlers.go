package batch

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"numsys-api/internal/handlers"
	"numsys-api/internal/observability"
	"numsys-api/internal/radix"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("batch")

// Convert handles POST /batch/convert?from=<radix>&to=<radix>. The body is
// plain text, one numeral per line. Bad lines are reported in place; only an
// unsupported radix or an unreadable body fails the request.
func Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "batch.convert",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	from, err := queryRadix(r, "from")
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid from parameter", err, http.StatusBadRequest, w)
		return
	}
	to, err := queryRadix(r, "to")
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid to parameter", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Int("batch.from_radix", from),
		attribute.Int("batch.to_radix", to),
	)

	start := time.Now()
	report, err := Process(r.Body, from, to)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		status := http.StatusInternalServerError
		msg := "reading request body failed"
		if errors.Is(err, radix.ErrUnsupportedRadix) {
			status = http.StatusBadRequest
			msg = err.Error()
		}
		observability.RecordError(ctx, span, logger, errorCounter, "convert", msg, err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "convert"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	linesCounter.Add(ctx, int64(report.Succeeded), metric.WithAttributes(attribute.String("outcome", "ok")))
	linesCounter.Add(ctx, int64(report.Failed), metric.WithAttributes(attribute.String("outcome", "error")))

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("lines", len(report.Lines)),
		attribute.Int("succeeded", report.Succeeded),
		attribute.Int("failed", report.Failed),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch conversion completed",
		zap.Int("from_radix", from),
		zap.Int("to_radix", to),
		zap.Int("lines", len(report.Lines)),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, report)
}

// queryRadix reads one required integer query parameter.
func queryRadix(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing query parameter " + name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}
