package camcheck

import (
	"log/slog"

	"github.com/sitewise/camcheck/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL   string
	dataDir string
	logger  *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir: config.DefaultDataDir,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite stores check history in a SQLite database at path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres stores check history in PostgreSQL.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.dbURL = dsn
	}
}

// WithDatabaseURL sets the database URL directly (sqlite:/// or
// postgres:// forms).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithDataDir sets the directory for the default SQLite database.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithLogger sets the logger used by client services.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
