// Package config handles reading and writing ~/.studium/config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int         `yaml:"version"`
	DBPath  string      `yaml:"db_path"`
	Timer   TimerConfig `yaml:"timer"`
	Stats   StatsConfig `yaml:"stats"`
}

// TimerConfig controls the stopwatch commit behaviour.
type TimerConfig struct {
	MinCommitSec int `yaml:"min_commit_sec"`
}

// StatsConfig controls the derived analytics windows.
type StatsConfig struct {
	BreakdownWindowDays int `yaml:"breakdown_window_days"`
	SeriesDays          int `yaml:"series_days"`
}

const configDirName = ".studium"
const configFile = "config.yaml"

// Dir returns the studium home directory, honouring STUDIUM_HOME.
func Dir() (string, error) {
	if dir := os.Getenv("STUDIUM_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// Load reads config.yaml from dir. A missing file is not an error: the
// defaults are returned so a fresh install works without any setup.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Write writes cfg to config.yaml in dir, creating dir if needed.
func Write(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config populated with the built-in defaults.
// DBPath is left empty; the caller resolves it against Dir.
func Default() *Config {
	return &Config{
		Version: 1,
		Timer: TimerConfig{
			MinCommitSec: 60,
		},
		Stats: StatsConfig{
			BreakdownWindowDays: 7,
			SeriesDays:          7,
		},
	}
}

// normalize clamps nonsense values back to the defaults so a hand-edited
// file cannot produce negative windows or thresholds.
func (c *Config) normalize() {
	def := Default()
	if c.Timer.MinCommitSec < 0 {
		c.Timer.MinCommitSec = def.Timer.MinCommitSec
	}
	if c.Stats.BreakdownWindowDays < 1 {
		c.Stats.BreakdownWindowDays = def.Stats.BreakdownWindowDays
	}
	if c.Stats.SeriesDays < 1 {
		c.Stats.SeriesDays = def.Stats.SeriesDays
	}
}
