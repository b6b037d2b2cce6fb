// Package config provides the configuration structure for the
// wod-skill-service.
package config

import (
	"errors"
	"fmt"

	"github.com/book-expert/configurator"
	"github.com/book-expert/logger"
)

// Defaults applied when the TOML omits a value.
const (
	DefaultTimezone       = "US/Pacific"
	DefaultTimeoutSeconds = 10
	DefaultListenAddress  = ":8080"
)

// ErrContentURLRequired indicates the content API URL was not configured.
var ErrContentURLRequired = errors.New("content api_url is required")

// NATSConfig holds the configuration for the NATS transport.
type NATSConfig struct {
	URL                 string `toml:"url"`
	SkillRequestSubject string `toml:"skill_request_subject"`
}

// HTTPConfig holds the configuration for the HTTP webhook.
type HTTPConfig struct {
	ListenAddress string `toml:"listen_address"`
}

// ContentConfig holds the configuration for the workout content API.
type ContentConfig struct {
	APIURL         string `toml:"api_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// SkillConfig holds the skill's platform identity and locale settings.
type SkillConfig struct {
	ApplicationID string `toml:"application_id"`
	Timezone      string `toml:"timezone"`
}

// PathsConfig holds the configuration for file paths.
type PathsConfig struct {
	BaseLogsDir string `toml:"base_logs_dir"`
}

// Config is the root configuration structure.
type Config struct {
	NATS    NATSConfig    `toml:"nats"`
	HTTP    HTTPConfig    `toml:"http"`
	Content ContentConfig `toml:"content"`
	Skill   SkillConfig   `toml:"skill"`
	Paths   PathsConfig   `toml:"paths"`
}

// Load loads the configuration for the wod-skill-service and applies
// defaults.
func Load(log *logger.Logger) (*Config, error) {
	var cfg Config

	err := configurator.Load(&cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from configurator: %w", err)
	}

	err = cfg.ApplyDefaults()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills omitted values and validates the required ones.
func (c *Config) ApplyDefaults() error {
	if c.Content.APIURL == "" {
		return ErrContentURLRequired
	}

	if c.Content.TimeoutSeconds <= 0 {
		c.Content.TimeoutSeconds = DefaultTimeoutSeconds
	}

	if c.Skill.Timezone == "" {
		c.Skill.Timezone = DefaultTimezone
	}

	if c.HTTP.ListenAddress == "" {
		c.HTTP.ListenAddress = DefaultListenAddress
	}

	return nil
}
