package config

import "time"

// Config holds runtime settings for the Rentora CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api/v1 prefix.
//   - RequestTimeout: transport-level timeout applied to each HTTP request.
//   - DatabasePath: location of the local sqlite database holding the
//     persisted session.
type Config struct {
	BaseURL        string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8083/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "rentora.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags, and environment variables. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
