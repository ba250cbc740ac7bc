// Package config
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"syspulse/internal/validator"
)

// Config is resolved in three layers: built-in defaults, then the optional
// YAML file named by SYSPULSE_CONFIG, then environment variables.
type Config struct {
	DBPath         string        `yaml:"db_path" validate:"required"`
	Interval       time.Duration `yaml:"-" validate:"min=100ms"`
	StatusInterval time.Duration `yaml:"-" validate:"min=1s"`
	LogLevel       string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string        `yaml:"log_format" validate:"oneof=text json"`
	AgentID        uuid.UUID     `yaml:"-"`
}

// fileConfig keeps durations and IDs as strings so a config file can say
// "2s" instead of nanoseconds.
type fileConfig struct {
	DBPath         string `yaml:"db_path"`
	Interval       string `yaml:"interval"`
	StatusInterval string `yaml:"status_interval"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	AgentID        string `yaml:"agent_id"`
}

func defaultConfig() *Config {
	return &Config{
		DBPath:         "data/syspulse.db",
		Interval:       time.Second,
		StatusInterval: 30 * time.Second,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("SYSPULSE_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.mergeEnv()

	if cfg.AgentID == uuid.Nil {
		cfg.AgentID = uuid.New()
	}

	if errs := validator.NewValidator().Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %v", errs)
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fc.DBPath != "" {
		c.DBPath = fc.DBPath
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	applyDuration(&c.Interval, fc.Interval)
	applyDuration(&c.StatusInterval, fc.StatusInterval)
	applyUUID(&c.AgentID, fc.AgentID)

	return nil
}

func (c *Config) mergeEnv() {
	if v := os.Getenv("SYSPULSE_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	applyDuration(&c.Interval, os.Getenv("SAMPLE_INTERVAL"))
	applyDuration(&c.StatusInterval, os.Getenv("STATUS_INTERVAL"))
	applyUUID(&c.AgentID, os.Getenv("SYSPULSE_AGENT_ID"))
}

func applyDuration(dst *time.Duration, raw string) {
	if raw == "" {
		return
	}
	if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
		*dst = parsed
	}
}

func applyUUID(dst *uuid.UUID, raw string) {
	if raw == "" {
		return
	}
	if parsed, err := uuid.Parse(raw); err == nil {
		*dst = parsed
	}
}
