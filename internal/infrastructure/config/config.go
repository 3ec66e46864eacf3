// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for veritas configuration.
	DefaultConfigDir = ".veritas"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Validation ValidationConfig `yaml:"validation,omitempty"`
	Log        LogConfig        `yaml:"log,omitempty"`
}

// ValidationConfig tunes the validation engine.
type ValidationConfig struct {
	// Workers bounds batch-validation parallelism. Zero means one worker
	// per CPU.
	Workers int `yaml:"workers,omitempty"`
	// Penalties overrides the per-rule temporal penalty factors, keyed by
	// issue code. Values must lie in (0,1].
	Penalties map[string]float64 `yaml:"penalties,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text, json
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from the .veritas directory in the given path.
// A missing config file is not an error: defaults apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// validate rejects configuration the engine cannot honor.
func (c *Config) validate() error {
	if c.Validation.Workers < 0 {
		return fmt.Errorf("validation.workers must not be negative, got %d", c.Validation.Workers)
	}
	for code, factor := range c.Validation.Penalties {
		if factor <= 0 || factor > 1 {
			return fmt.Errorf("penalty for %s must be in (0,1], got %v", code, factor)
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("VERITAS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if workers := os.Getenv("VERITAS_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			c.Validation.Workers = n
		}
	}
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a veritas config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
