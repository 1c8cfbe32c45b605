// Package config handles loading and saving user configuration for dinocompare.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Dataset       string   `yaml:"dataset,omitempty"`   // JSON or SQLite dataset path; empty uses the built-in one
	ImagesDir     string   `yaml:"images_dir"`          // directory holding <key>.png silhouettes
	FontPath      string   `yaml:"font_path,omitempty"` // TrueType font for fallback art
	NonComparable []string `yaml:"non_comparable"`      // species that keep their dataset fact
	Diets         []string `yaml:"diets"`               // choices offered by the diet selector
	Seed          uint64   `yaml:"seed,omitempty"`      // fixed fact seed, 0 for random
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ImagesDir:     "images",
		NonComparable: []string{"Pigeon"},
		Diets:         []string{"herbavor", "omnivor", "carnivor"},
	}
}

// Load reads the config file at path and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// LoadDir loads the config file from dir. A missing file yields the defaults.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.ImagesDir == "" {
		c.ImagesDir = def.ImagesDir
	}
	if c.NonComparable == nil {
		c.NonComparable = def.NonComparable
	}
	if len(c.Diets) == 0 {
		c.Diets = def.Diets
	}
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dinocompare"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
