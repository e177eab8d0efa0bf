// Package config provides configuration loading for folio.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDocumentsPath is the documents tree used when nothing else is
// configured.
const DefaultDocumentsPath = "~/Documents/library"

// DocumentsPath returns the documents root from the FOLIO_DOCS env var,
// falling back to DefaultDocumentsPath.
func DocumentsPath() string {
	if env := os.Getenv("FOLIO_DOCS"); env != "" {
		return env
	}
	return DefaultDocumentsPath
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// Config holds the complete folio configuration.
type Config struct {
	Documents DocumentsConfig
	Server    ServerConfig
	Log       LogConfig
	Scan      ScanConfig
}

// DocumentsConfig locates the documents tree.
type DocumentsConfig struct {
	Root string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// ScanConfig holds scanner configuration. An empty Exclude list leaves
// the scanner's built-in patterns in effect.
type ScanConfig struct {
	Exclude []string
}

// Validate checks the configuration for values no component can run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}
	return nil
}
