package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces all camcheck environment variables.
const envPrefix = "CAMCHECK"

// EnvConfig holds environment-based configuration. Field names map to
// CAMCHECK_-prefixed environment variables.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: CAMCHECK_HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: CAMCHECK_PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: CAMCHECK_DATA_DIR (default: .camcheck)
	DataDir string `envconfig:"DATA_DIR" default:".camcheck"`

	// DBURL is the database connection URL.
	// Env: CAMCHECK_DB_URL
	// Default: sqlite:///{data_dir}/camcheck.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: CAMCHECK_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: CAMCHECK_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// APIKeys is a comma-separated list of keys accepted on
	// write-protected endpoints.
	// Env: CAMCHECK_API_KEYS
	APIKeys string `envconfig:"API_KEYS"`

	// HistoryLimit is the default page size for check history.
	// Env: CAMCHECK_HISTORY_LIMIT (default: 50)
	HistoryLimit int `envconfig:"HISTORY_LIMIT" default:"50"`
}

// LoadFromEnv reads configuration from the environment.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to the resolved AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	return AppConfig{
		host:      e.Host,
		port:      e.Port,
		dataDir:   e.DataDir,
		dbURL:     e.DBURL,
		logLevel:  e.LogLevel,
		logFormat: e.LogFormat,
		apiKeys:   splitKeys(e.APIKeys),
		history:   e.HistoryLimit,
	}
}

func splitKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
