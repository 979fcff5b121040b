// Package config holds runtime settings for the CourseKeeper CLI.
package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the CourseKeeper CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including any prefix.
//   - RequestTimeout: per-request timeout for API calls.
//   - DataDir: directory holding the local state database.
//   - LogLevel: minimal level emitted by the CLI logger (debug/info/warn/error).
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	APIBaseURL          string        `env:"COURSEKEEPER_API_URL"`
	RequestTimeout      time.Duration `env:"COURSEKEEPER_REQUEST_TIMEOUT"`
	DataDir             string        `env:"COURSEKEEPER_DATA_DIR"`
	LogLevel            string        `env:"COURSEKEEPER_LOG_LEVEL"`
	OnlineCheckInterval time.Duration `env:"COURSEKEEPER_ONLINE_CHECK_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5080/api"
	c.RequestTimeout = 15 * time.Second
	c.DataDir = "."
	c.LogLevel = "info"
	c.OnlineCheckInterval = 30 * time.Second
}

// StateDBPath is the location of the local state database.
func (c *Config) StateDBPath() string {
	return filepath.Join(c.DataDir, "coursekeeper.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a .env file / environment variables (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
