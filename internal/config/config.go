// Package config loads runtime settings for the Haven CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: filesystem path of the local SQLite database.
//   - CaptchaVariant: which verification widget the auth forms show
//     ("text" or "math").
//   - ResponderDelay: base wait before the scripted counselor reply;
//     up to one second of jitter is added on top.
type Config struct {
	DatabasePath   string
	CaptchaVariant string
	ResponderDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "haven.db"
	c.CaptchaVariant = "text"
	c.ResponderDelay = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
