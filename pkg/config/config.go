package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Save     SaveConfig     `yaml:"save"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port        int    `yaml:"port"`
	AllowOrigin string `yaml:"allow_origin"`
	TLSCertFile string `yaml:"tls_cert_file"`
	TLSKeyFile  string `yaml:"tls_key_file"`
}

// DatabaseConfig selects the board repository
type DatabaseConfig struct {
	URL        string `yaml:"url"`        // sqlite://<path> or postgresql://...
	Migrations string `yaml:"migrations"` // root holding sqlite/ and postgres/
}

// SaveConfig controls how dirty boards are flushed to the repository
type SaveConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	QueueSize       int `yaml:"queue_size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Interval returns the save interval as a duration.
func (c SaveConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9090
	}
	if cfg.Server.AllowOrigin == "" {
		cfg.Server.AllowOrigin = "*"
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = "sqlite://civboard.db"
	}
	if cfg.Database.Migrations == "" {
		cfg.Database.Migrations = "./migrations"
	}
	if cfg.Save.IntervalSeconds == 0 {
		cfg.Save.IntervalSeconds = 10
	}
	if cfg.Save.QueueSize == 0 {
		cfg.Save.QueueSize = 1024
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate rejects values that cannot be used to start the server.
func (cfg *Config) Validate() error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if (cfg.Server.TLSCertFile == "") != (cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("tls_cert_file and tls_key_file must be set together")
	}
	if cfg.Save.IntervalSeconds < 0 {
		return fmt.Errorf("invalid save interval %d", cfg.Save.IntervalSeconds)
	}
	if cfg.Save.QueueSize < 0 {
		return fmt.Errorf("invalid save queue size %d", cfg.Save.QueueSize)
	}
	return nil
}
