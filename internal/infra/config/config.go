// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Station  StationConfig  `yaml:"station"`
	Storage  StorageConfig  `yaml:"storage"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Playback PlaybackConfig `yaml:"playback"`
	Chat     ChatConfig     `yaml:"chat"`
	Admin    AdminConfig    `yaml:"admin"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Addr string `yaml:"addr" default:":8080"`
}

// StationConfig identifies the upstream AzuraCast station.
type StationConfig struct {
	BaseURL         string `yaml:"base_url" default:"https://stream.hoosierillusions.com" validate:"required,url"`
	Name            string `yaml:"name" default:"hoosier-illusions" validate:"required"`
	PollIntervalSec int    `yaml:"poll_interval_sec" default:"15" validate:"gte=1,lte=300"`
}

// StorageConfig represents the object store holding config JSON blobs.
type StorageConfig struct {
	Bucket   string `yaml:"bucket" default:"hoosier-illusions-radio-config" validate:"required"`
	Region   string `yaml:"region" default:"us-east-1"`
	Endpoint string `yaml:"endpoint"` // Optional S3-compatible endpoint override
}

// CatalogConfig tunes catalog merge behavior.
type CatalogConfig struct {
	CacheSec int `yaml:"cache_sec" default:"10" validate:"gte=0,lte=300"`
}

// PlaybackConfig tunes the playback session.
type PlaybackConfig struct {
	// FailedURLCacheSize caps the per-process set of video URLs known to
	// fail playback. Zero selects the built-in default.
	FailedURLCacheSize int `yaml:"failed_url_cache_size" default:"0" validate:"gte=0"`
}

// ChatConfig represents the text-completion provider used for non-trigger
// chat messages.
type ChatConfig struct {
	Provider string         `yaml:"provider" default:"gemini"`
	Settings map[string]any `yaml:"settings"`
}

// AdminConfig represents admin-related configuration.
type AdminConfig struct {
	Token string `yaml:"token"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values for sensitive fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		if c.Chat.Settings == nil {
			c.Chat.Settings = make(map[string]any)
		}
		c.Chat.Settings["api_key"] = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}
	if v := os.Getenv("CONFIG_BUCKET"); v != "" {
		c.Storage.Bucket = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
