package twoscomp

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
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

var tracer = otel.Tracer("twoscomp")

// HandleEncode handles POST /twos-complement.
func HandleEncode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "twoscomp.encode",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "encode", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	value, err := strconv.ParseInt(strings.TrimSpace(req.Value), 10, 64)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "encode", "value must be a signed decimal integer", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("twoscomp.value", req.Value),
		attribute.Int("twoscomp.bit_width", req.Bits),
	)

	start := time.Now()
	res, err := Encode(value, req.Bits)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "encode", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", "encode"),
		attribute.Int("bit_width", req.Bits),
	)
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("encoding.complete", trace.WithAttributes(
		attribute.String("bits", res.Bits),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("value encoded",
		zap.Int64("value", value),
		zap.Int("bit_width", req.Bits),
		zap.String("bits", res.Bits),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, res)
}

// HandleDecode handles POST /twos-complement/decode.
func HandleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "twoscomp.decode",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "decode", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("twoscomp.bits", req.Bits),
		attribute.Int("twoscomp.bit_width", req.Width),
	)

	start := time.Now()
	value, err := Decode(req.Bits, req.Width)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "decode", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", "decode"),
		attribute.Int("bit_width", req.Width),
	)
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("decoding.complete", trace.WithAttributes(
		attribute.Int64("value", value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("bit string decoded",
		zap.String("bits", req.Bits),
		zap.Int("bit_width", req.Width),
		zap.Int64("value", value),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, DecodeResponse{
		Bits:     req.Bits,
		BitWidth: req.Width,
		Value:    strconv.FormatInt(value, 10),
	})
}
