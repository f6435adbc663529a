package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"numsys-api/internal/batch"
	"numsys-api/internal/bitwise"
	"numsys-api/internal/calculator"
	"numsys-api/internal/convert"
	"numsys-api/internal/handlers"
	"numsys-api/internal/history"
	"numsys-api/internal/ieee754"
	"numsys-api/internal/observability"
	"numsys-api/internal/twoscomp"
)

// NewRouter assembles the full HTTP surface: observability middleware,
// health and metrics endpoints, and every numeral domain.
func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	convert.RegisterRoutes(r)
	calculator.RegisterRoutes(r)
	batch.RegisterRoutes(r)
	history.RegisterRoutes(r)
	ieee754.RegisterRoutes(r)
	twoscomp.RegisterRoutes(r)
	bitwise.RegisterRoutes(r)

	return r
}
