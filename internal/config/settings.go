package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	LogLevel string `yaml:"LOG_LEVEL"`
	Workers  int    `yaml:"WORKERS"`
}

// Defaults returns the settings used when no settings file is present.
func Defaults() Settings {
	return Settings{
		LogLevel: "info",
		Workers:  4,
	}
}

// Load reads settings from path when the file exists, then applies
// environment overrides. A missing file is not an error; the tool has to
// run without any configuration at all.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return Settings{}, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		s.LogLevel = v
	}
	if v, ok := os.LookupEnv("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("parsing WORKERS: %w", err)
		}
		s.Workers = n
	}
	return s, nil
}
