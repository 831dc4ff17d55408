package config

import "time"

// Default service endpoints.
const (
	DefaultAuthURL      = "https://functions.poehali.dev/275bbc42-c195-47f2-bd7d-b025a1146d01"
	DefaultDashboardURL = "https://functions.poehali.dev/e6263e39-d9eb-42b0-9a94-50431a60dafc"
	DefaultThumbnailURL = "https://functions.poehali.dev/a4900b83-22d1-4b6e-a752-16fb2fc84c46"
)

// Config holds runtime settings for the VidWave CLI.
//
// Fields:
//   - AuthURL, DashboardURL, ThumbnailURL: base URLs of the three services.
//   - DataDir: directory of the local database holding the session token.
//   - RequestTimeout: per-request limit; zero means requests are never cut short.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	AuthURL        string
	DashboardURL   string
	ThumbnailURL   string
	DataDir        string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthURL = DefaultAuthURL
	c.DashboardURL = DefaultDashboardURL
	c.ThumbnailURL = DefaultThumbnailURL
	c.DataDir = ".vidwave"
	c.RequestTimeout = 0
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
