// Package config loads runtime configuration for the Rentora CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags).
//  4. Environment variables (see parseEnv), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the rental backend API
//	-t int      request timeout (seconds)
//	-d string   path to the local sqlite database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8083/api/v1",
//	  "request_timeout": "10s",
//	  "database_path": "rentora.db"
//	}
//
// Environment variables
//
//	RENTORA_BASE_URL          base URL of the rental backend API
//	RENTORA_REQUEST_TIMEOUT   request timeout as a duration string ("10s")
//	RENTORA_DATABASE_PATH     path to the local sqlite database
package config
