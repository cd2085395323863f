// Package config loads runtime configuration for the credit-risk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file (see parseFile) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// The result is validated before it is returned.
//
// Supported flags
//
//	-a string   base URL of the auth service
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-s string   storage file path
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "auth_service_url": "http://localhost:8000",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "storage_path": "credit.db",
//	  "register_field": "username",
//	  "evaluation_delay": "2s",
//	  "log_backend": "slog",
//	  "log_level": "info"
//	}
//
// The same keys are used in YAML.
//
// Note: This package does not read environment variables directly; use the
// config file or flags to configure values.
package config
