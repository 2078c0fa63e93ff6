// Package config loads the optional YAML configuration file. Command
// line flags and environment variables take precedence over it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CrawlConfig holds crawl parameters from the config file.
type CrawlConfig struct {
	StartURL     string `yaml:"start_url"`
	MaxPages     int    `yaml:"max_pages"`
	FetchTimeout string `yaml:"fetch_timeout"`
	Concurrency  int    `yaml:"concurrency"`
}

// OutputConfig holds output destinations from the config file.
type OutputConfig struct {
	CSV       string `yaml:"csv"`
	Excel     string `yaml:"excel"`
	Archive   string `yaml:"archive"`
	Store     string `yaml:"store"`
	Separator string `yaml:"separator"`
}

// FileConfig represents the structure of ~/.campusnews/config.yaml.
type FileConfig struct {
	Crawl  CrawlConfig  `yaml:"crawl"`
	Output OutputConfig `yaml:"output"`
}

// DefaultPath returns the default config file location under the user's
// home directory.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".campusnews", "config.yaml"), nil
}

// LoadConfigFile loads configuration from the given path. Returns nil if
// the file doesn't exist (not an error). Returns error if the file
// exists but cannot be parsed.
func LoadConfigFile(path string) (*FileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
