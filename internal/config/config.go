package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Sort    SortConfig `yaml:"sort"`
	Output  string     `yaml:"output"`  // summary, table, json or yaml
	Confirm bool       `yaml:"confirm"` // ask before deleting in the clean command
	DryRun  bool       `yaml:"dry_run"`
	Log     LogConfig  `yaml:"log"`

	// Extra directories whose direct children are never deleted
	ProtectedPaths []string `yaml:"protected_paths"`
}

// SortConfig is the initial sort applied to scan results
type SortConfig struct {
	Key        string `yaml:"key"` // name, size or date
	Descending bool   `yaml:"descending"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`
}

var (
	validSortKeys = []string{"name", "size", "date"}
	validOutputs  = []string{"summary", "table", "json", "yaml"}
	validLevels   = []string{"debug", "info", "warn", "error"}
)

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names
	config := GetDefault()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !contains(validSortKeys, c.Sort.Key) {
		return fmt.Errorf("sort key must be one of %v, got %q", validSortKeys, c.Sort.Key)
	}
	if !contains(validOutputs, c.Output) {
		return fmt.Errorf("output must be one of %v, got %q", validOutputs, c.Output)
	}
	if !contains(validLevels, c.Log.Level) {
		return fmt.Errorf("log level must be one of %v, got %q", validLevels, c.Log.Level)
	}
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		return fmt.Errorf("log file must be absolute: %s", c.Log.File)
	}
	for _, path := range c.ProtectedPaths {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("protected path must be absolute: %s", path)
		}
	}
	return nil
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "cleantemp")
	return filepath.Join(configDir, "config.yaml"), nil
}

// EnsureConfigExists creates a default config file if it doesn't exist
func EnsureConfigExists() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(GetDefault(), configPath); err != nil {
			return "", err
		}
	}

	return configPath, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
