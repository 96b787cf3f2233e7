package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/flagx"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL   string         `json:"server_base_url"`
	DatabasePath    string         `json:"database_path"`
	NotificationTTL timex.Duration `json:"notification_ttl"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. If no file is named, nothing happens. Read or
// unmarshal errors panic; the intended usage is
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = time.Duration(jc.NotificationTTL.Duration)
	}
}
