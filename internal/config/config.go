package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the tunables for the CLI and simulator. Engine behavior
// itself is configured through fsrs.Params; these are the defaults fed
// into it.
type Config struct {
	RequestedRetention  float64
	MaximumIntervalDays int
	LogLevel            string
	SimDays             int
	SimDeckSize         int
	SimSeed             int64
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the CLI still runs when .env is absent.
	_ = godotenv.Load()

	return Config{
		RequestedRetention:  envFloatOr("MNEMO_RETENTION", 0.9),
		MaximumIntervalDays: envIntOr("MNEMO_MAX_INTERVAL_DAYS", 36500),
		LogLevel:            envOr("MNEMO_LOG_LEVEL", "INFO"),
		SimDays:             envIntOr("MNEMO_SIM_DAYS", 90),
		SimDeckSize:         envIntOr("MNEMO_SIM_DECK_SIZE", 100),
		SimSeed:             envInt64Or("MNEMO_SIM_SEED", 1),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envInt64Or(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}
