// Package config handles configuration for the roster server: defaults,
// optional JSON overlay, and command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the activities server.
//
// Fields:
//   - ListenAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx); empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not
//     use test defaults in prod.
//   - SessionValidityDuration: how long a login stays valid.
//   - TeachersFile: path to the teacher credentials seed file.
type Config struct {
	ListenAddr              string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	TeachersFile            string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 8 * time.Hour
	c.TeachersFile = "teachers.json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
