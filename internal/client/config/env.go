package config

import (
	"os"
	"time"
)

const (
	envBaseURL        = "RENTORA_BASE_URL"
	envRequestTimeout = "RENTORA_REQUEST_TIMEOUT"
	envDatabasePath   = "RENTORA_DATABASE_PATH"
)

// parseEnv overlays Config with values from environment variables. Unset or
// empty variables leave the current value in place. An unparseable
// RENTORA_REQUEST_TIMEOUT panics, consistent with the other loaders.
func parseEnv(cfg *Config) {
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
