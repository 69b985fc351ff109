// Package config loads the optional swayws configuration file. Flags
// override config values, which override the runtime-directory defaults;
// that resolution happens in the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the content of ~/.config/swayws/config.yaml.
type Config struct {
	// MappingFile overrides the default mapping file path.
	MappingFile string `yaml:"mapping_file"`
	// PreviousFile overrides the default previous-workspace file path.
	PreviousFile string `yaml:"previous_file"`
	// LogLevel is one of debug, info, warn, error. Default info.
	LogLevel string `yaml:"log_level"`
	// Assignments are OUTPUT:SPEC tokens applied when `map` or `apply` is
	// run without arguments.
	Assignments []string `yaml:"assignments"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "swayws", "config.yaml"), nil
}

// Load reads the config from the standard location. A missing file yields
// a zero config.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and strictly decodes the config file at path. Unknown
// keys are an error so typos do not silently disable settings.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("config %s: unknown log_level %q", path, cfg.LogLevel)
	}
	return cfg, nil
}
