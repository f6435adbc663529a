package main

import (
	"context"

	"numsys-api/internal/batch"
	"numsys-api/internal/bitwise"
	"numsys-api/internal/calculator"
	"numsys-api/internal/convert"
	"numsys-api/internal/history"
	"numsys-api/internal/ieee754"
	"numsys-api/internal/observability"
	"numsys-api/internal/twoscomp"
)

// initMetrics initialises the metric provider and every domain's metric
// instruments. Add new domain InitMetrics calls here as the project grows.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	domains := []func() error{
		convert.InitMetrics,
		calculator.InitMetrics,
		batch.InitMetrics,
		history.InitMetrics,
		ieee754.InitMetrics,
		twoscomp.InitMetrics,
		bitwise.InitMetrics,
	}

	for _, init := range domains {
		if err := init(); err != nil {
			return nil, err
		}
	}

	return shutdown, nil
}
