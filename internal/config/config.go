// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables.
// The spreadsheet ID and the service-account credential come from the same
// two variables the dashboard's deploy pipeline already provides as secrets.
type Config struct {
	SpreadsheetID  string `envconfig:"SPREADSHEET_ID"`
	CredentialJSON string `envconfig:"GOOGLE_CREDENTIAL_JSON"`

	OutputDir string `envconfig:"OUTPUT_DIR" default:"data"`
	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	FetchTimeout    time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"0s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Kafka republishing is enabled by setting KAFKA_BROKERS.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"dashboard-datasets"`
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.SpreadsheetID == "" {
		return nil, errors.New("SPREADSHEET_ID is required")
	}
	if cfg.CredentialJSON == "" {
		return nil, errors.New("GOOGLE_CREDENTIAL_JSON is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR must not be empty")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	if cfg.FetchTimeout <= 0 {
		return nil, errors.New("FETCH_TIMEOUT must be positive")
	}
	if cfg.RefreshInterval < 0 {
		return nil, errors.New("REFRESH_INTERVAL must not be negative")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.KafkaEnabled() && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_TOPIC is empty")
	}

	return &cfg, nil
}

// KafkaEnabled reports whether dataset republishing is configured.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
