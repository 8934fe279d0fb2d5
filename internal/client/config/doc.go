// Package config loads runtime configuration for the Splits CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables: SPLITS_API_URL, SPLITS_DB, LOG_LEVEL.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Splits backend HTTP API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// Durations can be either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://splits-backend.vercel.app",
//	  "request_timeout": "15s",
//	  "local_db_path": "splits.db",
//	  "log_level": "info"
//	}
package config
