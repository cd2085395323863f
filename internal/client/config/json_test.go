package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"auth_service_url":      "http://www.example:9000",
		"online_check_interval": "10s",
		"request_timeout":       float64(2 * time.Second),
		"storage_path":          "",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{StoragePath: "credit.db", LogLevel: "info"}
		require.NoError(t, parseFile(cfg))

		assert.Equal(t, "http://www.example:9000", cfg.AuthServiceURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "", cfg.StoragePath, "explicit empty storage path selects memory")
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep earlier values")
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"auth_service_url: http://yaml:8000\n"+
				"evaluation_delay: 500ms\n"+
				"register_field: email\n"+
				"log_backend: zap\n"), 0o600))

		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		require.NoError(t, parseFile(cfg))

		assert.Equal(t, "http://yaml:8000", cfg.AuthServiceURL)
		assert.Equal(t, 500*time.Millisecond, cfg.EvaluationDelay)
		assert.Equal(t, "email", cfg.RegisterField)
		assert.Equal(t, "zap", cfg.LogBackend)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			AuthServiceURL:      "http://defaults:1234",
			OnlineCheckInterval: 42 * time.Second,
		}
		require.NoError(t, parseFile(cfg))

		assert.Equal(t, "http://defaults:1234", cfg.AuthServiceURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		require.Error(t, parseFile(&Config{}))
	})

	t.Run("missing file → error", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}

		require.ErrorContains(t, parseFile(&Config{}), "read config file")
	})
}
