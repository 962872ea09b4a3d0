package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/facecam/internal/flagx"
	"github.com/dmitrijs2005/facecam/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "empty".
type JsonConfig struct {
	ServerURL       *string         `json:"server_url"`
	DatabasePath    *string         `json:"database_path"`
	RefreshInterval *timex.Duration `json:"refresh_interval"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile()
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

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
