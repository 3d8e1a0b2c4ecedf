package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT"` // json or text; derived from the environment when empty
}

// PaginationConfig holds the defaults applied to list requests.
type PaginationConfig struct {
	DefaultPerPage int `envconfig:"DEFAULT_PER_PAGE" default:"15"`
	MaxPerPage     int `envconfig:"MAX_PER_PAGE" default:"100"`
}

// TelemetryConfig holds OpenTelemetry tracing settings.
// Exporter endpoints are read by the OTLP exporters from the standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"catalog"`
	Protocol    string `envconfig:"EXPORTER_OTLP_PROTOCOL" default:"grpc"`
	Sampler     string `envconfig:"TRACES_SAMPLER" default:"parentbased_traceidratio"`
	SamplerArg  string `envconfig:"TRACES_SAMPLER_ARG" default:"1.0"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Environment string           `envconfig:"APP_ENV" default:"development"`
	Log         LogConfig        `envconfig:"LOG"`
	Pagination  PaginationConfig `envconfig:"PAGINATION"`
	Telemetry   TelemetryConfig  `envconfig:"OTEL"`
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present;
// real environment variables take precedence over it.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func (c *AppConfig) validate() error {
	if c.Pagination.DefaultPerPage <= 0 {
		return fmt.Errorf("invalid config: PAGINATION_DEFAULT_PER_PAGE must be positive")
	}
	if c.Pagination.MaxPerPage < c.Pagination.DefaultPerPage {
		return fmt.Errorf("invalid config: PAGINATION_MAX_PER_PAGE must be >= PAGINATION_DEFAULT_PER_PAGE")
	}
	return nil
}
