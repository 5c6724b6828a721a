package storage

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/catalog/internal/model"
)

// Config holds application configuration.
type Config struct {
	Source           string           `yaml:"source"`
	Listen           string           `yaml:"listen"`
	PlaceholderImage string           `yaml:"placeholderImage"`
	LogLevel         string           `yaml:"logLevel"`
	Timeout          time.Duration    `yaml:"timeout"`
	ImageCheck       ImageCheckConfig `yaml:"imageCheck"`
}

// ImageCheckConfig controls thumbnail probing.
type ImageCheckConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Source:           DefaultSource,
		Listen:           ":8080",
		PlaceholderImage: model.PlaceholderImage,
		LogLevel:         "info",
		Timeout:          10 * time.Second,
		ImageCheck: ImageCheckConfig{
			Enabled:     false,
			Concurrency: 8,
			Timeout:     5 * time.Second,
		},
	}
}

// LoadConfig reads config from the YAML file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills fields left empty in the file.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Source == "" {
		c.Source = defaults.Source
	}
	if c.Listen == "" {
		c.Listen = defaults.Listen
	}
	if c.PlaceholderImage == "" {
		c.PlaceholderImage = defaults.PlaceholderImage
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Timeout <= 0 {
		c.Timeout = defaults.Timeout
	}
	if c.ImageCheck.Concurrency <= 0 {
		c.ImageCheck.Concurrency = defaults.ImageCheck.Concurrency
	}
	if c.ImageCheck.Timeout <= 0 {
		c.ImageCheck.Timeout = defaults.ImageCheck.Timeout
	}
}

// SaveConfig writes config to the YAML file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/catalog/config.yaml
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "catalog", "config.yaml"), nil
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/catalog/products.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "catalog", "products.db"), nil
}
