package bitwise

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
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

var tracer = otel.Tracer("bitwise")

// Compute handles POST /bitwise.
func Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "bitwise.compute",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	a, err := parseDecimal(req.A)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", "invalid operand a", err, http.StatusBadRequest, w)
		return
	}
	b, err := parseDecimal(req.B)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", "invalid operand b", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("bitwise.operand.a", req.A),
		attribute.String("bitwise.operand.b", req.B),
	)

	start := time.Now()
	res := ComputeAll(a, b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(attribute.String("operation", "compute"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Int("operand.a.bits", a.BitLen()),
		attribute.Int("operand.b.bits", b.BitLen()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("bitwise results computed",
		zap.String("a", req.A),
		zap.String("b", req.B),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, ComputeResponse{
		A:           Render(res.A),
		B:           Render(res.B),
		And:         Render(res.And),
		Or:          Render(res.Or),
		Xor:         Render(res.Xor),
		NotA:        Render(res.NotA),
		NotB:        Render(res.NotB),
		ShiftLeft1:  Render(res.AShl1),
		ShiftRight1: Render(res.AShr1),
		ShiftLeft2:  Render(res.AShl2),
		ShiftRight2: Render(res.AShr2),
	})
}

// parseDecimal reads an arbitrary-precision decimal integer.
func parseDecimal(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("bitwise: %q is not a decimal integer", s)
	}
	return v, nil
}
