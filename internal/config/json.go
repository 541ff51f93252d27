package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/flagx"
	"github.com/dmitrijs2005/novabiz/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "30s"
// or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath      string         `json:"database_path"`
	AssistantEndpoint string         `json:"assistant_endpoint"`
	AssistantModel    string         `json:"assistant_model"`
	AssistantAPIKey   string         `json:"assistant_api_key"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no file is given the function is a no-op. Only
// fields present in the file override the current values.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.AssistantEndpoint != "" {
		cfg.AssistantEndpoint = jc.AssistantEndpoint
	}
	if jc.AssistantModel != "" {
		cfg.AssistantModel = jc.AssistantModel
	}
	if jc.AssistantAPIKey != "" {
		cfg.AssistantAPIKey = jc.AssistantAPIKey
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
