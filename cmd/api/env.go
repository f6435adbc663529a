package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"numsys-api/internal/history"
)

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// envOr returns the value of key, or fallback when key is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// listenAddr returns the address the HTTP server binds to.
func listenAddr() string {
	return envOr("NUMSYS_ADDR", ":8080")
}

// historyLimit returns the conversion log capacity. Values that do not
// parse as a positive integer fall back to the default.
func historyLimit() int {
	v := os.Getenv("NUMSYS_HISTORY_LIMIT")
	if v == "" {
		return history.DefaultLimit
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return history.DefaultLimit
	}

	return n
}
