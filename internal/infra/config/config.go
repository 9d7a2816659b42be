// Package config provides configuration loading from YAML files and the
// environment.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingAPIKey is returned when no YouTube API key is configured.
	ErrMissingAPIKey = errors.New("no api key found")
	// ErrInvalid marks any other configuration problem.
	ErrInvalid = errors.New("invalid configuration")
)

// Config represents the application configuration.
type Config struct {
	YouTube YouTubeConfig `yaml:"youtube"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
}

// YouTubeConfig represents YouTube Data API configuration.
type YouTubeConfig struct {
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`
	PageSize int    `yaml:"page_size" default:"50" validate:"gte=1,lte=50"`
	MaxPages int    `yaml:"max_pages" validate:"gte=0"`
}

// ReportConfig represents report output configuration.
type ReportConfig struct {
	Labels map[string]any `yaml:"labels"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Output string `yaml:"output" default:"stderr"`
}

// Load loads configuration from a YAML file. An empty path skips the file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "failed to read config file"), ErrInvalid)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "failed to parse config file"), ErrInvalid)
		}
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to set defaults"), ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
// API_KEY wins over YOUTUBE_API_KEY.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.YouTube.APIKey = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.YouTube.APIKey = v
	}
	if v := os.Getenv("YOUTUBE_ENDPOINT"); v != "" {
		c.YouTube.Endpoint = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		return ErrMissingAPIKey
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Mark(errors.Wrap(err, "struct validation failed"), ErrInvalid)
	}

	return nil
}
