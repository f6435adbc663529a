// Package convert exposes single-numeral conversion over HTTP: the main
// /convert endpoint with quick renderings and optional worked steps, and the
// /bases listing of supported systems. Successful conversions land in the
// history log.
package convert

import (
	"encoding/json"
	"math/big"
	"net/http"
	"time"

	"numsys-api/internal/handlers"
	"numsys-api/internal/history"
	"numsys-api/internal/observability"
	"numsys-api/internal/radix"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("convert")

// Convert handles POST /convert.
func Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "convert.convert",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("convert.input", req.Number),
		attribute.Int("convert.from_base", req.FromBase),
		attribute.Int("convert.to_base", req.ToBase),
		attribute.Bool("convert.include_steps", req.IncludeSteps),
	)

	start := time.Now()
	conv, err := radix.Convert(req.Number, req.FromBase, req.ToBase)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	quick, err := quickRenderings(conv.Decimal)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "rendering quick results failed", err, http.StatusInternalServerError, w)
		return
	}

	resp := ConvertResponse{
		Input:    conv.Input,
		FromBase: conv.FromRadix,
		ToBase:   conv.ToRadix,
		Decimal:  conv.Decimal.String(),
		Result:   conv.Output,
		Quick:    quick,
	}

	if req.IncludeSteps {
		steps, err := workedSteps(req.Number, conv.Decimal, req.FromBase, req.ToBase)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "convert", "rendering steps failed", err, http.StatusInternalServerError, w)
			return
		}
		resp.Steps = steps
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	history.Store.Append(conv.Input, conv.FromRadix, conv.ToRadix, conv.Output)

	attrs := metric.WithAttributes(attribute.String("operation", "convert"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, float64(len(conv.Output)), attrs)

	span.AddEvent("conversion.complete", trace.WithAttributes(
		attribute.String("result", conv.Output),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("convert.result", conv.Output))
	span.SetStatus(codes.Ok, "")

	logger.Info("conversion completed",
		zap.String("input", conv.Input),
		zap.Int("from_base", conv.FromRadix),
		zap.Int("to_base", conv.ToRadix),
		zap.String("result", conv.Output),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Bases handles GET /bases.
func Bases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "convert.bases",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	bases := radix.Systems()

	attrs := metric.WithAttributes(attribute.String("operation", "bases"))
	opsCounter.Add(ctx, 1, attrs)

	span.SetAttributes(attribute.Int("convert.bases_count", len(bases)))
	span.SetStatus(codes.Ok, "")

	logger.Info("bases listed",
		zap.Int("count", len(bases)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, BasesResponse{Bases: bases})
}

// quickRenderings renders one value in the four everyday bases.
func quickRenderings(v *big.Int) (Quick, error) {
	var out [4]string
	for i, r := range []int{2, 8, 10, 16} {
		s, err := radix.FromDecimal(v, r)
		if err != nil {
			return Quick{}, err
		}
		out[i] = s
	}
	return Quick{Binary: out[0], Octal: out[1], Decimal: out[2], Hexadecimal: out[3]}, nil
}

// workedSteps assembles the optional step-by-step explanation: the positional
// expansion of the input and the repeated divisions behind the output.
func workedSteps(numeral string, decimal *big.Int, from, to int) (*Steps, error) {
	expansion, err := radix.ExplainToDecimal(numeral, from)
	if err != nil {
		return nil, err
	}
	divisions, err := radix.ExplainFromDecimal(decimal, to)
	if err != nil {
		return nil, err
	}

	steps := &Steps{
		ToDecimal:   make([]ExpansionTerm, 0, len(expansion.Steps)),
		FromDecimal: make([]DivisionRow, 0, len(divisions.Steps)),
	}
	for _, s := range expansion.Steps {
		steps.ToDecimal = append(steps.ToDecimal, ExpansionTerm{
			Position:   s.Position,
			Digit:      s.Digit,
			DigitValue: s.DigitValue,
			Power:      s.Power,
			Weight:     s.Weight.String(),
			Term:       s.Term.String(),
		})
	}
	for _, s := range divisions.Steps {
		steps.FromDecimal = append(steps.FromDecimal, DivisionRow{
			Step:      s.Step,
			Dividend:  s.Dividend.String(),
			Quotient:  s.Quotient.String(),
			Remainder: s.Remainder,
			Digit:     s.Digit,
		})
	}
	return steps, nil
}
