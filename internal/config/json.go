package config

import (
	"encoding/json"
	"os"

	"github.com/brunohmachado/vitrine/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	FragmentBaseURL string `json:"fragment_base_url"`
	DatabasePath    string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file named via
// the -c/-config flags. When no file is named, nothing happens. Read or
// unmarshal errors panic; intended usage is defaults -> parseJson ->
// parseFlags, with later stages overriding earlier ones.
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

	if jc.FragmentBaseURL != "" {
		cfg.FragmentBaseURL = jc.FragmentBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
