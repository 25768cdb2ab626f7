// Package config loads runtime configuration for the CLI.
//
// Sources, in order of precedence (later wins):
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-d string   path of the SQLite database file (default "data/auth.db")
//	-l string   log level (default "info")
//
// # JSON schema
//
//	{
//	  "database_dsn": "data/auth.db",
//	  "log_level": "debug"
//	}
//
// Environment variables are not consulted.
package config
