package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/flagx"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "8h"
// or as integer nanoseconds.
type JsonConfig struct {
	ListenAddr              string         `json:"listen_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	TeachersFile            string         `json:"teachers_file"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. If no file is named, nothing happens. Read or
// unmarshal errors panic; the intended usage is
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(config *Config) {
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

	if jc.ListenAddr != "" {
		config.ListenAddr = jc.ListenAddr
	}
	if jc.DatabaseDSN != "" {
		config.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		config.SecretKey = jc.SecretKey
	}
	if jc.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = time.Duration(jc.SessionValidityDuration.Duration)
	}
	if jc.TeachersFile != "" {
		config.TeachersFile = jc.TeachersFile
	}
}
