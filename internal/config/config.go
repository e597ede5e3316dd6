// Package config loads the application configuration from a YAML file.
// Every field has a working default; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    Server    `yaml:"server"`
	Store     Store     `yaml:"store"`
	Generator Generator `yaml:"generator"`
	Log       Log       `yaml:"log"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Store struct {
	// Path of the SQLite database file.
	Path string `yaml:"path"`
}

type Generator struct {
	TargetClues int `yaml:"targetClues"`
	// MaxTier caps the techniques a generated puzzle may require:
	// singles, pairs, advanced, or xwing. Empty means uncapped.
	MaxTier string `yaml:"maxTier"`
}

type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Server:    Server{Addr: ":8080"},
		Store:     Store{Path: "numelace.db"},
		Generator: Generator{TargetClues: 32},
		Log:       Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
