package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values come from a YAML file; CLI flags
// override individual fields.
type Config struct {
	// Source is either a base URL (http/https) or a local directory holding
	// the TCC JSON documents.
	Source string `yaml:"source"`

	// WorkerCount controls concurrent document fetches. 0 or 1 means
	// sequential.
	WorkerCount int `yaml:"workers"`

	CachePath string `yaml:"cache_path"`

	// CacheTTL is a Go duration string, e.g. "1h" or "30m".
	CacheTTL string `yaml:"cache_ttl"`

	// TopN bounds the proportion breakdown; TrackedThemes seeds the trends
	// report when no --themes flag is given.
	TopN          int      `yaml:"top_n"`
	TrackedThemes []string `yaml:"tracked_themes"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		WorkerCount: 4,
		CachePath:   "tcc-insights.db",
		CacheTTL:    "1h",
		TopN:        7,
	}
}

// MaxAge parses CacheTTL. An empty or invalid value disables caching by
// returning zero.
func (c *Config) MaxAge() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0
	}
	return d
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
