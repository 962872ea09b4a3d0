package config

import "time"

// Config holds runtime settings for the facecam client.
//
// Fields:
//   - ServerURL: base URL of the camera service.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RefreshInterval: how often the feed is re-fetched in the background;
//     zero disables background refresh.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL       string
	DatabasePath    string
	RefreshInterval time.Duration
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.DatabasePath = "facecam.db"
	c.RefreshInterval = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
