package main

import (
	"os"

	// Packages
	yaml "gopkg.in/yaml.v3"

	eliza "github.com/dialogik/go-eliza"
	speech "github.com/dialogik/go-eliza/pkg/speech"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the optional YAML configuration file. It carries the
// preferences that belong outside the dialogue core: the default
// language, a fixed random seed, and per-language voice preferences
// for a speech-synthesis adapter.
type Config struct {
	Language eliza.Lang    `yaml:"language"`
	Seed     int64         `yaml:"seed"`
	Speech   speech.Config `yaml:"speech"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadConfig reads the configuration from path, or returns defaults
// when no path is given
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Language: eliza.LangEN,
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, eliza.ErrBadParameter.Withf("%s: %v", path, err)
	}
	if !cfg.Language.IsValid() {
		return nil, eliza.ErrBadParameter.Withf("%s: unknown language %q", path, cfg.Language)
	}

	return cfg, nil
}
