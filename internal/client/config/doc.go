// Package config loads runtime configuration for the deckkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON. Keys missing
//     from the file keep their previous values.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the card database API
//	-b string   storage driver: sqlite, badger or memory
//	-d string   storage path (SQLite file or Badger directory)
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.scryfall.com",
//	  "request_timeout": "10s",
//	  "request_interval": "100ms",
//	  "storage_driver": "sqlite",
//	  "storage_path": "deckkeeper.db",
//	  "session_ttl": "24h",
//	  "auth_delay": "500ms",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
//
// This package does not read environment variables.
package config
