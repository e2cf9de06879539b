// Package config provides configuration loading and management for the resolvconf CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/munichmade/resolvconf/internal/paths"
	"gopkg.in/yaml.v3"
)

// Config represents the complete resolvconf CLI configuration.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig configures how resolv.conf files are parsed.
type ParserConfig struct {
	// Dialect selects the parsing dialect: glibc, permissive, or macos.
	Dialect string `yaml:"dialect"`
	// CollectAll reports every parse error instead of stopping at the first.
	CollectAll bool `yaml:"collect_all"`
}

// OutputConfig configures how parsed configurations are rendered.
type OutputConfig struct {
	// Format selects the dump encoding: yaml or json.
	Format string `yaml:"format"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			Dialect:    "glibc",
			CollectAll: false,
		},
		Output: OutputConfig{
			Format: "yaml",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, it creates a default configuration file.
func Load() (*Config, error) {
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile reads the configuration from the specified file path.
// If the file doesn't exist, it creates a default configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := cfg.SaveToFile(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Defaults first, so the file only needs the keys it overrides.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile writes the configuration to the specified file path,
// creating the parent directory as needed.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	validDialects := map[string]bool{"glibc": true, "permissive": true, "macos": true}
	if !validDialects[c.Parser.Dialect] {
		return fmt.Errorf("parser.dialect must be one of: glibc, permissive, macos")
	}

	validFormats := map[string]bool{"yaml": true, "json": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output.format must be one of: yaml, json")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	return nil
}
