// Package config stores client-side settings: the server address and the
// bearer token obtained at login, persisted as JSON in the user config dir.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const DefaultServerURL = "http://localhost:8080"

type Config struct {
	ServerURL string `json:"server_url"`
	Email     string `json:"email,omitempty"`
	Token     string `json:"token,omitempty"`
}

// DefaultPath returns the standard location of the client config file,
// e.g. ~/.config/cloudvault/config.json on Linux.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cloudvault", "config.json"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields a config with defaults, so the first run works without setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{ServerURL: DefaultServerURL}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	return &cfg, nil
}

// Save writes cfg to path, creating parent directories as needed. The file
// holds a bearer token, so permissions are restricted to the owner.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
