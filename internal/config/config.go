package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the tool configuration loaded from
// ~/.config/sitectl/config.yaml. A missing file yields defaults; the sites
// themselves are never stored here, the filesystem registry is the only
// source of truth for them.
type Settings struct {
	AvailableDir string `yaml:"available_dir"`
	EnabledDir   string `yaml:"enabled_dir"`
	DefaultPHP   string `yaml:"default_php"`
	Email        string `yaml:"email,omitempty"`
}

const configDir = ".config/sitectl"
const configFile = "config.yaml"

// Default nginx directories on Debian-family systems.
const (
	DefaultAvailableDir = "/etc/nginx/sites-available"
	DefaultEnabledDir   = "/etc/nginx/sites-enabled"
)

// New creates Settings with default values.
func New() *Settings {
	return &Settings{
		AvailableDir: DefaultAvailableDir,
		EnabledDir:   DefaultEnabledDir,
		DefaultPHP:   "8.2",
	}
}

// Dir returns the config directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the settings from disk, returning defaults if no file exists.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from an explicit path.
func LoadFrom(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Partial files fall back to defaults for the missing keys
	if s.AvailableDir == "" {
		s.AvailableDir = DefaultAvailableDir
	}
	if s.EnabledDir == "" {
		s.EnabledDir = DefaultEnabledDir
	}
	if s.DefaultPHP == "" {
		s.DefaultPHP = "8.2"
	}

	return s, nil
}

// Save writes the settings to disk.
func (s *Settings) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}
	return s.SaveTo(path)
}

// SaveTo writes the settings to an explicit path.
func (s *Settings) SaveTo(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
