package config

import "time"

// Config holds runtime settings for the Splits CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the Splits backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - LocalDBPath: path of the local SQLite database holding the session token.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	LocalDBPath    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://splits-backend.vercel.app"
	c.RequestTimeout = 15 * time.Second
	c.LocalDBPath = "splits.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
