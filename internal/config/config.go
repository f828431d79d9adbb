// Package config loads notificator settings from defaults, JSON files and
// NOTIFICATOR_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "NOTIFICATOR_"

// Configuration represents the notificator configuration
type Configuration struct {
	DefaultMessage string `koanf:"default_message"`

	// HTTPTimeout is in seconds; 0 leaves the HTTP client without a timeout
	HTTPTimeout int `koanf:"http_timeout" validate:"min=0,max=600"`

	// BeepInterval is the pause between beeps in milliseconds
	BeepInterval int `koanf:"beep_interval" validate:"min=0,max=10000"`

	LineEndpoint   string `koanf:"line_endpoint" validate:"required,http_url"`
	SlackURL       string `koanf:"slack_url" validate:"omitempty,http_url"`
	DiscordURL     string `koanf:"discord_url" validate:"omitempty,http_url"`
	LineToken      string `koanf:"line_token"`
	LogLevel       string `koanf:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat      string `koanf:"log_format" validate:"oneof=text json"`
	ShowProgress   bool   `koanf:"show_progress"`
	PushgatewayURL string `koanf:"pushgateway_url" validate:"omitempty,http_url"`
	MetricsJob     string `koanf:"metrics_job" validate:"required"`
}

// GlobalConfigPath returns ~/.notificator/config.json
func GlobalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".notificator", "config.json"), nil
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", localConfigPath, err)
		}
		if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: NOTIFICATOR_SLACK_URL -> slack_url
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// HTTPTimeoutDuration returns the HTTP client timeout; zero means none
func (c *Configuration) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// BeepIntervalDuration returns the pause between beeps
func (c *Configuration) BeepIntervalDuration() time.Duration {
	return time.Duration(c.BeepInterval) * time.Millisecond
}
