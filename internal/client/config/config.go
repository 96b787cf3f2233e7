// Package config handles configuration for the client: defaults, optional
// JSON overlay, and command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the activities CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the roster service.
//   - DatabasePath: local sqlite database path; empty means the per-user
//     default location.
//   - NotificationTTL: how long a status message stays visible.
type Config struct {
	ServerBaseURL   string
	DatabasePath    string
	NotificationTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.DatabasePath = ""
	c.NotificationTTL = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
