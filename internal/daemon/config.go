// Package daemon manages the LeetBoo daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	API          APIConfig          `toml:"api"`
	Storage      StorageConfig      `toml:"storage"`
	Reminders    RemindersConfig    `toml:"reminders"`
	Subscription SubscriptionConfig `toml:"subscription"`
	Telemetry    TelemetryConfig    `toml:"telemetry"`
	Logging      LoggingConfig      `toml:"logging"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StorageConfig controls where the state database lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// RemindersConfig controls the daily refresh loop.
type RemindersConfig struct {
	RefreshInterval string `toml:"refresh_interval"`
}

// SubscriptionConfig seeds the local entitlement service.
type SubscriptionConfig struct {
	Entitled bool `toml:"entitled"`
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	home := leetbooHome()
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        7342,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			Dir: home,
		},
		Reminders: RemindersConfig{
			RefreshInterval: "1m",
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(home, "leetboo.log"),
		},
	}
}

// LoadConfig reads config from ~/.leetboo/config.toml, falling back to
// defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(leetbooHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.leetboo/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(leetbooHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// leetbooHome returns the LeetBoo data directory.
func leetbooHome() string {
	if env := os.Getenv("LEETBOO_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".leetboo")
}

// Home is exported for use by other packages.
func Home() string {
	return leetbooHome()
}
