// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cablesizer/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains sizing engine defaults
	Engine EngineConfig `json:"engine"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Database contains calculation history storage settings
	Database DatabaseConfig `json:"database"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig contains default parameters applied when a request omits them
type EngineConfig struct {
	// DefaultVoltage is the default supply voltage in volts
	DefaultVoltage float64 `json:"default_voltage"`

	// DefaultPhases is the default phase count (1 or 3)
	DefaultPhases int `json:"default_phases"`

	// DefaultVoltageDropLimit is the default voltage drop limit in percent
	DefaultVoltageDropLimit float64 `json:"default_voltage_drop_limit"`

	// DefaultInstallationMethod is the default installation method
	DefaultInstallationMethod string `json:"default_installation_method"`

	// DefaultAmbientTemp is the default ambient temperature in °C
	DefaultAmbientTemp int `json:"default_ambient_temp"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the detailed calculation breakdown
	ShowDetails bool `json:"show_details"`
}

// DatabaseConfig contains calculation history storage settings
type DatabaseConfig struct {
	// DSN is the Postgres connection string; empty disables persistence
	DSN string `json:"dsn,omitempty"`

	// MaxOpenConns limits the connection pool
	MaxOpenConns int `json:"max_open_conns"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			DefaultVoltage:            400,
			DefaultPhases:             3,
			DefaultVoltageDropLimit:   5.0,
			DefaultInstallationMethod: "air",
			DefaultAmbientTemp:        30,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
