// Package config handles sparklog configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the default configuration file name.
const ConfigFile = "sparklog.yml"

// DefaultLogFiles are the source files loaded when none are configured.
// They are loaded in this order; missing files are skipped.
var DefaultLogFiles = []string{"oom.json", "disk.json", "throttle.json"}

// Defaults for the agent loop.
const (
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 4096
	DefaultMaxTurns  = 10
)

// Config is the sparklog configuration, read from sparklog.yml.
type Config struct {
	LogFiles  []string `yaml:"log_files"`
	Model     string   `yaml:"model"`
	MaxTokens int      `yaml:"max_tokens"`
	MaxTurns  int      `yaml:"max_turns"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		LogFiles:  append([]string(nil), DefaultLogFiles...),
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		MaxTurns:  DefaultMaxTurns,
	}
}

// Load reads configuration from the given path. A missing file is not
// an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(cfg.LogFiles) == 0 {
		cfg.LogFiles = append([]string(nil), DefaultLogFiles...)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}

	return cfg, nil
}
