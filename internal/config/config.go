package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAddr = ":8080"

// DefaultBatchLimit is the batch size used when RISK_BATCH_LIMIT is unset or invalid.
const DefaultBatchLimit = 25

// Load reads .env from the current directory and sets env vars.
// Safe to call multiple times; existing env vars are not overwritten.
func Load() error {
	return godotenv.Load()
}

// Addr returns the listen address derived from PORT (":8080" when unset).
// Both "9000" and ":9000" are accepted.
func Addr() string {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		return defaultAddr
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// APIKey returns the key gating /api routes. Empty disables the gate.
func APIKey() string {
	return os.Getenv("RISK_API_KEY")
}

// LogLevel returns RISK_LOG_LEVEL lower-cased, defaulting to "info".
func LogLevel() string {
	if v := strings.TrimSpace(os.Getenv("RISK_LOG_LEVEL")); v != "" {
		return strings.ToLower(v)
	}
	return "info"
}

// LogFormat returns "json" when RISK_LOG_FORMAT=json, otherwise "text".
func LogFormat() string {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("RISK_LOG_FORMAT")), "json") {
		return "json"
	}
	return "text"
}

// MetricsEnabled reports whether /metrics is served. Set RISK_METRICS=0 to disable.
func MetricsEnabled() bool {
	return os.Getenv("RISK_METRICS") != "0"
}

// BatchLimit returns the max number of items accepted by one batch request.
// Zero, negative, or invalid values fall back to the default of 25.
func BatchLimit() int {
	if v := os.Getenv("RISK_BATCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultBatchLimit
}
