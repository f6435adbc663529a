package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
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

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// errBadKey marks replayed keys the keypad could never produce: unknown
// labels, or digits foreign to the session radix.
var errBadKey = errors.New("calculator: key not on keypad")

// Add handles POST /calculator/add
func Add(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "add", OpAdd)
}

// Subtract handles POST /calculator/subtract
func Subtract(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "subtract", OpSubtract)
}

// Multiply handles POST /calculator/multiply
func Multiply(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "multiply", OpMultiply)
}

// Divide handles POST /calculator/divide
func Divide(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "divide", OpDivide)
}

// handleBinaryOp is the shared implementation for all binary calculator
// endpoints: parse both numerals in the requested base, evaluate, and render
// the result in the same base.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, opName string, op Op) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	a, err := radix.ToDecimal(req.A, req.Base)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid operand a", err, http.StatusBadRequest, w)
		return
	}
	b, err := radix.ToDecimal(req.B, req.Base)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid operand b", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("calculator.operand.a", req.A),
		attribute.String("calculator.operand.b", req.B),
		attribute.Int("calculator.base", req.Base),
	)

	start := time.Now()
	decimal, err := evaluate(a, b, op)
	var result string
	if err == nil {
		result, err = radix.FromDecimal(decimal, req.Base)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, float64(len(result)), attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.String("a", req.A),
		zap.String("b", req.B),
		zap.Int("base", req.Base),
		zap.String("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         req.A,
		B:         req.B,
		Base:      req.Base,
		Result:    result,
		Decimal:   decimal.String(),
	})
}

// Eval handles POST /calculator/eval, replaying a key-press sequence against
// a fresh session with a child span per key. Evaluation failures such as
// division by zero are legitimate session states, shown in the trail and on
// the display; only keys the keypad could never produce fail the request.
func Eval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.eval",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "eval", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Keys) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "eval", "no keys provided", fmt.Errorf("keys array is empty"), http.StatusBadRequest, w)
		return
	}

	state, err := NewState(req.Base)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "eval", "unsupported base", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Int("eval.base", req.Base),
		attribute.Int("eval.keys_count", len(req.Keys)),
	)

	logger.Info("starting key replay",
		zap.Int("base", req.Base),
		zap.Int("keys", len(req.Keys)),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	trail := make([]KeyResult, 0, len(req.Keys))

	for i, key := range req.Keys {
		_, keySpan := tracer.Start(ctx, fmt.Sprintf("calculator.eval.key.%d", i),
			trace.WithAttributes(
				attribute.Int("eval.key.index", i),
				attribute.String("eval.key", key),
				attribute.String("eval.display.before", state.Display()),
			),
		)

		keyErr := pressKey(state, key)

		if errors.Is(keyErr, errBadKey) {
			keySpan.RecordError(keyErr)
			keySpan.SetStatus(codes.Error, keyErr.Error())
			keySpan.End()

			span.RecordError(keyErr)
			span.SetStatus(codes.Error, fmt.Sprintf("invalid key at index %d", i))

			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "eval")))

			logger.Error("invalid key in replay",
				zap.Int("index", i),
				zap.String("key", key),
				zap.Error(keyErr),
				zap.String("request_id", requestID),
			)

			handlers.WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid key %q at index %d", key, i))
			return
		}

		entry := KeyResult{Key: key, Display: state.Display()}
		if keyErr != nil {
			entry.Error = keyErr.Error()
			keySpan.RecordError(keyErr)
			keySpan.SetStatus(codes.Error, keyErr.Error())
			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "eval")))
		} else {
			keySpan.SetAttributes(attribute.String("eval.display.after", state.Display()))
			keySpan.SetStatus(codes.Ok, "")
		}
		keySpan.End()

		trail = append(trail, entry)
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("operation", "eval"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, float64(len(state.Display())), attrs)

	span.AddEvent("replay.complete", trace.WithAttributes(
		attribute.String("display", state.Display()),
		attribute.Int("total_keys", len(req.Keys)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("key replay completed",
		zap.Int("base", req.Base),
		zap.Int("keys", len(req.Keys)),
		zap.String("display", state.Display()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	resp := EvalResponse{
		Base:    req.Base,
		Keys:    trail,
		Display: state.Display(),
	}
	if op, operand, held := state.Pending(); held {
		resp.Pending = &PendingOperation{Operator: string(op), Operand: operand.String()}
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// pressKey dispatches one replayed key onto the session.
func pressKey(s *State, key string) error {
	switch key {
	case "C":
		s.ClearAll()
		return nil
	case "CE":
		s.ClearEntry()
		return nil
	case "back":
		s.Backspace()
		return nil
	case "=":
		return s.PressEquals()
	case "+", "-", "*", "/":
		return s.PressOperator(Op(key))
	}
	if len(key) != 1 {
		return fmt.Errorf("%w: %q", errBadKey, key)
	}
	if _, err := radix.DigitValue(key[0], s.Radix()); err != nil {
		return fmt.Errorf("%w: %q", errBadKey, key)
	}
	s.PressDigit(key[0])
	return nil
}
