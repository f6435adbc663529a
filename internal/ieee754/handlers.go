package ieee754

import (
	"encoding/json"
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

var tracer = otel.Tracer("ieee754")

// HandleEncode handles POST /ieee754/encode.
func HandleEncode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "ieee754.encode",
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

	width, err := ParseWidth(req.Format)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "encode", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	value, err := ParseValue(req.Value)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "encode", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("ieee754.format", string(width)),
		attribute.String("ieee754.value", req.Value),
	)

	start := time.Now()
	d, err := Encode(value, width)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "encode", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", "encode"),
		attribute.String("format", string(width)),
	)
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("encoding.complete", trace.WithAttributes(
		attribute.String("hex", d.Hex),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("value encoded",
		zap.String("format", string(width)),
		zap.String("value", req.Value),
		zap.String("hex", d.Hex),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, EncodeResponse{
		Format:           string(d.Width),
		Value:            formatValue(d.Value),
		Bits:             d.Bits,
		SignBit:          d.SignBit,
		ExponentBits:     d.ExponentBits,
		MantissaBits:     d.MantissaBits,
		BiasedExponent:   d.BiasedExponent,
		UnbiasedExponent: d.UnbiasedExponent,
		Mantissa:         d.Mantissa,
		Hex:              d.Hex,
		Formula:          formulaFor(d),
	})
}

// HandleDecode handles POST /ieee754/decode.
func HandleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "ieee754.decode",
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

	width, err := ParseWidth(req.Format)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "decode", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("ieee754.format", string(width)))

	start := time.Now()
	value, err := Decode(Decomposition{
		Width:        width,
		SignBit:      req.SignBit,
		ExponentBits: req.ExponentBits,
		MantissaBits: req.MantissaBits,
	})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "decode", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	rendered := formatValue(value)

	attrs := metric.WithAttributes(
		attribute.String("operation", "decode"),
		attribute.String("format", string(width)),
	)
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("decoding.complete", trace.WithAttributes(
		attribute.String("value", rendered),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("bit fields decoded",
		zap.String("format", string(width)),
		zap.String("value", rendered),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, DecodeResponse{
		Format: string(width),
		Value:  rendered,
	})
}

// formulaFor renders the normalized-form reading of a decomposition, biased
// exponent and bias spelled out.
func formulaFor(d *Decomposition) string {
	return fmt.Sprintf("(-1)^%d × %s × 2^(%d - %d)",
		d.SignBit, d.Mantissa, d.BiasedExponent, layouts[d.Width].bias)
}

// formatValue renders a float the shortest way that parses back exactly.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
