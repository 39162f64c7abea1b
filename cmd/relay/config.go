package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the relay server settings.
type Config struct {
	Listen        string `toml:"listen"`
	MaxFrameBytes int64  `toml:"max_frame_bytes"`
	LogLevel      string `toml:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Listen:   ":1999",
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address is required")
	}
	if c.MaxFrameBytes < 0 {
		return fmt.Errorf("config: max_frame_bytes must not be negative")
	}
	return nil
}
