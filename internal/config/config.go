// Package config loads runtime settings for the NovaBiz CLI. Values are
// layered: defaults, then an optional JSON file, then command-line flags;
// later sources win. The assistant API key can also come from the
// NOVABIZ_API_KEY environment variable.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the NovaBiz CLI.
type Config struct {
	DatabasePath      string
	AssistantEndpoint string
	AssistantModel    string
	AssistantAPIKey   string
	RequestTimeout    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "novabiz.db"
	c.AssistantEndpoint = "https://api.openai.com/v1/chat/completions"
	c.AssistantModel = "gpt-4o-mini"
	c.AssistantAPIKey = os.Getenv("NOVABIZ_API_KEY")
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
