// Package config loads the app configuration from a yaml file with
// environment variable fallbacks.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	ResultsDir string `yaml:"results-dir" env:"RESULTS_DIR" env-default:"results"`
}

// Load reads the config file at path, or only the environment when the
// path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config, nil
}
