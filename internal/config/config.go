// Package config provides configuration management for the agroprecios tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/carloss4dv/agro-precios/pkg/precios/fetch"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. AGROPRECIOS_LOGGING_LEVEL.
const EnvPrefix = "AGROPRECIOS"

// Configuration validation errors.
var (
	ErrInvalidFilePattern = errors.New("fetch.file_pattern must contain exactly one %d verb")
	ErrMaxDelayBelowStart = errors.New("fetch.retry.max_delay_ms cannot be below initial_delay_ms")
	ErrMissingOutputPath  = errors.New("output.path is required when output.format is csv")
)

// Config represents the complete tool configuration.
type Config struct {
	Fetch   FetchConfig   `yaml:"fetch"`
	Parse   ParseConfig   `yaml:"parse"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// FetchConfig locates the workbooks on the listing page.
type FetchConfig struct {
	ListingURL     string      `yaml:"listing_url" split_words:"true" validate:"required,url"`
	LinkText       string      `yaml:"link_text" split_words:"true" validate:"required"`
	SectionHeading string      `yaml:"section_heading" split_words:"true"`
	FilePattern    string      `yaml:"file_pattern" split_words:"true" validate:"required"`
	UserAgent      string      `yaml:"user_agent" split_words:"true"`
	Retry          RetryConfig `yaml:"retry"`
}

// RetryConfig defines retry behavior for downloads.
type RetryConfig struct {
	MaxAttempts       int     `yaml:"max_attempts" split_words:"true" validate:"min=1"`
	InitialDelayMs    int     `yaml:"initial_delay_ms" split_words:"true" validate:"min=0"`
	MaxDelayMs        int     `yaml:"max_delay_ms" split_words:"true" validate:"min=0"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier" split_words:"true" validate:"gte=1"`
	TimeoutSec        int     `yaml:"timeout_sec" split_words:"true" validate:"min=1"`
}

// ParseConfig controls extraction.
type ParseConfig struct {
	Sheet        string `yaml:"sheet" split_words:"true"`
	ConvertPerKg bool   `yaml:"convert_per_kg" split_words:"true"`
	Years        []int  `yaml:"years" split_words:"true" validate:"dive,min=1950,max=2099"`
	DownloadDir  string `yaml:"download_dir" split_words:"true" validate:"required"`
	Concurrency  int    `yaml:"concurrency" split_words:"true" validate:"min=1,max=16"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Format string `yaml:"format" split_words:"true" validate:"oneof=json csv"`
	Path   string `yaml:"path" split_words:"true"`
	Pretty bool   `yaml:"pretty" split_words:"true"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	fo := fetch.DefaultOptions()
	return &Config{
		Fetch: FetchConfig{
			ListingURL:     fo.ListingURL,
			LinkText:       fo.LinkText,
			SectionHeading: fo.SectionHeading,
			FilePattern:    fo.FilePattern,
			UserAgent:      fo.UserAgent,
			Retry: RetryConfig{
				MaxAttempts:       fo.Retry.MaxAttempts,
				InitialDelayMs:    fo.Retry.InitialDelayMs,
				MaxDelayMs:        fo.Retry.MaxDelayMs,
				BackoffMultiplier: fo.Retry.BackoffMultiplier,
				TimeoutSec:        fo.Retry.TimeoutSec,
			},
		},
		Parse: ParseConfig{
			DownloadDir: "./descargas",
			Concurrency: 4,
		},
		Output: OutputConfig{
			Format: "json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then AGROPRECIOS_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

var validate = validator.New()

// Validate checks field constraints and the rules that span fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if strings.Count(c.Fetch.FilePattern, "%d") != 1 || strings.Count(c.Fetch.FilePattern, "%") != 1 {
		return ErrInvalidFilePattern
	}

	if c.Fetch.Retry.MaxDelayMs > 0 && c.Fetch.Retry.MaxDelayMs < c.Fetch.Retry.InitialDelayMs {
		return ErrMaxDelayBelowStart
	}

	if c.Output.Format == "csv" && c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	return nil
}

// FetchOptions converts the fetch section into fetcher options.
func (c *Config) FetchOptions() fetch.Options {
	return fetch.Options{
		ListingURL:     c.Fetch.ListingURL,
		SectionHeading: c.Fetch.SectionHeading,
		LinkText:       c.Fetch.LinkText,
		FilePattern:    c.Fetch.FilePattern,
		UserAgent:      c.Fetch.UserAgent,
		Retry: fetch.RetryPolicy{
			MaxAttempts:       c.Fetch.Retry.MaxAttempts,
			InitialDelayMs:    c.Fetch.Retry.InitialDelayMs,
			MaxDelayMs:        c.Fetch.Retry.MaxDelayMs,
			BackoffMultiplier: c.Fetch.Retry.BackoffMultiplier,
			TimeoutSec:        c.Fetch.Retry.TimeoutSec,
		},
	}
}
