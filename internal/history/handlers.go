package history

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"numsys-api/internal/handlers"
	"numsys-api/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("history")

// defaultListLimit matches the page size the log has always been browsed
// with.
const defaultListLimit = 50

// List handles GET /history?limit= and returns the most recent records.
func List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "history.list",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			if err == nil {
				err = fmt.Errorf("limit must be positive, got %d", v)
			}
			observability.RecordError(ctx, span, logger, errorCounter, "list", "invalid limit parameter", err, http.StatusBadRequest, w)
			return
		}
		limit = v
	}

	start := time.Now()
	records := Store.Recent(limit)
	total := Store.Len()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	recordOp(ctx, "list", elapsed, total)

	span.SetAttributes(
		attribute.Int("history.limit", limit),
		attribute.Int("history.returned", len(records)),
		attribute.Int("history.total", total),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("history listed",
		zap.Int("limit", limit),
		zap.Int("returned", len(records)),
		zap.Int("total", total),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ListResponse{Records: records, Total: total})
}

// Clear handles DELETE /history.
func Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "history.clear",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	cleared := Store.Clear()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	recordOp(ctx, "clear", elapsed, 0)

	span.SetAttributes(attribute.Int("history.cleared", cleared))
	span.SetStatus(codes.Ok, "")

	logger.Info("history cleared",
		zap.Int("cleared", cleared),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ClearResponse{Cleared: cleared})
}

// Export handles GET /history/export and streams the log as a CSV
// attachment, oldest record first.
func Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "history.export",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	err := Store.WriteCSV(&buf)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "export", "rendering csv failed", err, http.StatusInternalServerError, w)
		return
	}

	total := Store.Len()
	recordOp(ctx, "export", elapsed, total)

	span.SetAttributes(
		attribute.Int("history.exported", total),
		attribute.Int("history.bytes", buf.Len()),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("history exported",
		zap.Int("records", total),
		zap.Int("bytes", buf.Len()),
		zap.String("request_id", requestID),
	)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="conversion_history.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// recordOp feeds the shared instruments for one finished history operation.
func recordOp(ctx context.Context, op string, elapsedMS float64, size int) {
	attrs := metric.WithAttributes(attribute.String("operation", op))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsedMS, attrs)
	sizeGauge.Record(ctx, int64(size), attrs)
}
