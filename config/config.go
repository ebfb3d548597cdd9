// Package config loads library configuration for the host applications
// from environment variables, with an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/intelliflow-os/intelliflow-core/helpers"
)

// Config represents the complete intelliflow-core configuration
type Config struct {
	Observability ObservabilityConfig
	Governance    GovernanceConfig
	Pricing       PricingConfig
	Environment   string
}

// ObservabilityConfig holds logging configuration
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string // json or text
}

// GovernanceConfig holds governance panel configuration
type GovernanceConfig struct {
	PanelTitle       string
	MaxPanelEntries  int
	DetailsMaxLength int
}

// PricingConfig holds cost calculation configuration
type PricingConfig struct {
	DefaultModel string
}

// New creates a new Config instance by loading environment variables
func New() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Observability: ObservabilityConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "json"),
		},
		Governance: GovernanceConfig{
			PanelTitle:       getEnv("GOVERNANCE_PANEL_TITLE", "Governance Log"),
			MaxPanelEntries:  getEnvAsInt("GOVERNANCE_MAX_PANEL_ENTRIES", 50),
			DetailsMaxLength: getEnvAsInt("GOVERNANCE_DETAILS_MAX_LENGTH", 100),
		},
		Pricing: PricingConfig{
			DefaultModel: getEnv("PRICING_DEFAULT_MODEL", helpers.DefaultModel),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if all configuration fields are usable
func (c *Config) Validate() error {
	switch c.Observability.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", c.Observability.LogFormat)
	}

	if c.Governance.MaxPanelEntries <= 0 {
		return fmt.Errorf("governance max panel entries must be positive")
	}
	if c.Governance.DetailsMaxLength <= 0 {
		return fmt.Errorf("governance details max length must be positive")
	}

	if _, ok := helpers.ModelCosts[c.Pricing.DefaultModel]; !ok {
		return fmt.Errorf("default model %q has no pricing entry", c.Pricing.DefaultModel)
	}

	return nil
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
