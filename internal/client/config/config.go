package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/creditscore/internal/validation"
)

// Config holds runtime settings for the credit-risk CLI.
//
// Fields:
//   - AuthServiceURL: base URL of the external authentication service.
//   - RequestTimeout: per-request timeout for auth calls.
//   - OnlineCheckInterval: how often the client probes service reachability.
//   - StoragePath: SQLite file holding the credential; empty keeps it in memory.
//   - RegisterField: JSON key carrying the identifier on registration.
//   - EvaluationDelay: simulated processing time of a loan evaluation.
//   - LogBackend, LogLevel: logger selection.
type Config struct {
	AuthServiceURL      string        `validate:"required,http_url" label:"auth service url"`
	RequestTimeout      time.Duration `validate:"gt=0" label:"request timeout"`
	OnlineCheckInterval time.Duration `validate:"gt=0" label:"online check interval"`
	StoragePath         string
	RegisterField       string        `validate:"oneof=username email" label:"register field"`
	EvaluationDelay     time.Duration `validate:"gte=0" label:"evaluation delay"`
	LogBackend          string        `validate:"oneof=slog zap" label:"log backend"`
	LogLevel            string        `validate:"oneof=debug info warn error" label:"log level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthServiceURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.StoragePath = "credit.db"
	c.RegisterField = "username"
	c.EvaluationDelay = 2 * time.Second
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// Validate reports the first set of invalid fields.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
