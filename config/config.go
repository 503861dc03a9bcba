// Package config loads server settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Name           string `yaml:"name"`
	Addr           string `yaml:"addr"`
	ReadBufferSize int    `yaml:"read_buffer_size"`
}

func Default() Config {
	return Config{
		Name:           "grit",
		Addr:           "0.0.0.0:8080",
		ReadBufferSize: 4096,
	}
}

// Load reads path and overlays it on the defaults. The defaults are returned
// alongside any error so callers can fall back to them.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.Name == "" {
		cfg.Name = Default().Name
	}
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = Default().ReadBufferSize
	}

	return cfg, nil
}
