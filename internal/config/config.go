// Package config provides runtime configuration for the enea-outages tool.
//
// All settings have working defaults, so the tool runs with no configuration
// at all. Values can be overridden via environment variables or, when
// ENEA_CONFIG points at a YAML file, from that file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings the scraper and CLI read at startup.
type Config struct {
	BaseURL       string        `yaml:"base_url" env:"ENEA_BASE_URL" env-default:"https://wylaczenia-eneaoperator.pl/index.php"`
	Timeout       time.Duration `yaml:"timeout" env:"ENEA_TIMEOUT" env-default:"30s"`
	UserAgent     string        `yaml:"user_agent" env:"ENEA_USER_AGENT" env-default:"enea-outages-cli/1.0 (github.com/pfrederiksen/enea-outages)"`
	DefaultRegion string        `yaml:"default_region" env:"ENEA_REGION" env-default:"Poznań"`
}

// Load reads configuration from the environment, and additionally from the
// YAML file named by ENEA_CONFIG when set. A missing file is an error; a
// missing variable falls back to its default.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("ENEA_CONFIG"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}
