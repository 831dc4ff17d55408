package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vidwave/internal/flagx"
	"github.com/dmitrijs2005/vidwave/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell an
// absent key from an explicit zero.
type JsonConfig struct {
	AuthURL        *string         `json:"auth_url"`
	DashboardURL   *string         `json:"dashboard_url"`
	ThumbnailURL   *string         `json:"thumbnail_url"`
	DataDir        *string         `json:"data_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// It panics on read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.AuthURL, jc.AuthURL)
	setString(&cfg.DashboardURL, jc.DashboardURL)
	setString(&cfg.ThumbnailURL, jc.ThumbnailURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
