package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/creditscore/internal/flagx"
	"github.com/dmitrijs2005/creditscore/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling.
// It relies on timex.Duration so files can specify intervals either as
// strings like "3s" or as integer nanoseconds. Absent keys leave the
// corresponding Config field untouched.
type FileConfig struct {
	AuthServiceURL      string          `json:"auth_service_url" yaml:"auth_service_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	StoragePath         *string         `json:"storage_path" yaml:"storage_path"`
	RegisterField       string          `json:"register_field" yaml:"register_field"`
	EvaluationDelay     *timex.Duration `json:"evaluation_delay" yaml:"evaluation_delay"`
	LogBackend          string          `json:"log_backend" yaml:"log_backend"`
	LogLevel            string          `json:"log_level" yaml:"log_level"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. Files ending in .yaml or .yml are decoded as YAML, anything else
// as JSON. No flag, no change.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.AuthServiceURL != "" {
		cfg.AuthServiceURL = fc.AuthServiceURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.StoragePath != nil {
		cfg.StoragePath = *fc.StoragePath
	}
	if fc.RegisterField != "" {
		cfg.RegisterField = fc.RegisterField
	}
	if fc.EvaluationDelay != nil {
		cfg.EvaluationDelay = fc.EvaluationDelay.Duration
	}
	if fc.LogBackend != "" {
		cfg.LogBackend = fc.LogBackend
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
