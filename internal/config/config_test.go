package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when file is absent", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)

		assert.Equal(t, DocumentsPath(), cfg.Documents.Root)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Empty(t, cfg.Scan.Exclude)
	})

	t.Run("loads yaml file", func(t *testing.T) {
		path := writeConfig(t, `
documents:
  root: /srv/library
server:
  port: 9321
log:
  level: debug
scan:
  exclude:
    - node_modules
    - .git
`, 0o600)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/srv/library", cfg.Documents.Root)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 9321, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, []string{"node_modules", ".git"}, cfg.Scan.Exclude)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 9321\n", 0o600)
		t.Setenv("FOLIO_SERVER_PORT", "9876")
		t.Setenv("FOLIO_LOG_FORMAT", "json")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9876, cfg.Server.Port)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("rejects world readable file", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 9321\n", 0o644)

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "insecure config file permissions")
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		path := writeConfig(t, "# "+strings.Repeat("x", maxConfigFileSize)+"\n", 0o600)

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file too large")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "{{{\n", 0o600)

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config file")
	})

	t.Run("rejects invalid log level", func(t *testing.T) {
		path := writeConfig(t, "log:\n  level: verbose\n", 0o600)

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Log:    LogConfig{Level: "info", Format: "console"},
	}

	t.Run("accepts valid config", func(t *testing.T) {
		cfg := valid
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects out of range port", func(t *testing.T) {
		cfg := valid
		cfg.Server.Port = 70000
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		cfg := valid
		cfg.Log.Format = "xml"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log format")
	})
}

func TestDocumentsPath(t *testing.T) {
	t.Run("prefers env var", func(t *testing.T) {
		t.Setenv("FOLIO_DOCS", "/srv/library")
		assert.Equal(t, "/srv/library", DocumentsPath())
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Setenv("FOLIO_DOCS", "")
		assert.Equal(t, DefaultDocumentsPath, DocumentsPath())
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Documents"), ExpandHome("~/Documents"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/srv/library", ExpandHome("/srv/library"))
	assert.Equal(t, "library", ExpandHome("library"))
}
