// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sitewise/camcheck/internal/log"
)

// Default configuration values.
const (
	DefaultHost      = "0.0.0.0"
	DefaultPort      = 8080
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "pretty"
	DefaultDataDir   = ".camcheck"
	DefaultHistory   = 50
)

// AppConfig is the resolved application configuration.
type AppConfig struct {
	host      string
	port      int
	dataDir   string
	dbURL     string
	logLevel  string
	logFormat string
	apiKeys   []string
	history   int
}

// Addr returns the host:port the server binds to.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// Host returns the server host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database URL. Defaults to a SQLite database
// inside the data directory.
func (c AppConfig) DBURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return "sqlite:///" + filepath.Join(c.dataDir, "camcheck.db")
}

// LogLevel returns the configured log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the configured log format.
func (c AppConfig) LogFormat() log.Format { return log.Format(c.logFormat) }

// APIKeys returns the keys accepted for write-protected endpoints.
// Empty means write protection is disabled.
func (c AppConfig) APIKeys() []string { return c.apiKeys }

// HistoryLimit returns the default page size for check history.
func (c AppConfig) HistoryLimit() int { return c.history }

// WithHost returns a copy with the host overridden. Empty values keep
// the existing setting; CLI flags use this to take precedence over
// environment variables.
func (c AppConfig) WithHost(host string) AppConfig {
	if host != "" {
		c.host = host
	}
	return c
}

// WithPort returns a copy with the port overridden (0 keeps existing).
func (c AppConfig) WithPort(port int) AppConfig {
	if port != 0 {
		c.port = port
	}
	return c
}

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}
