package config

import "os"

// parseEnv overlays Config with values from environment variables:
//
//	SPLITS_API_URL  base URL of the backend
//	SPLITS_DB       path of the local session database
//	LOG_LEVEL       debug, info, warn, error
func parseEnv(cfg *Config) {
	if v := os.Getenv("SPLITS_API_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("SPLITS_DB"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
