// Package config loads the application configuration from a YAML file,
// environment variables and defaults, and validates the result.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/gallery"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/schema"
)

// Config is the full application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Gallery GalleryConfig `mapstructure:"gallery"`
}

// CatalogConfig configures the remote catalog client.
type CatalogConfig struct {
	BaseURL         string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds" validate:"min=1"`
	ArtworkPageSize int    `mapstructure:"artwork_page_size" validate:"min=1,max=100"`
	ArtistPageSize  int    `mapstructure:"artist_page_size" validate:"min=1,max=100"`
}

// Timeout returns the catalog request timeout as a duration.
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GalleryConfig selects and configures the durable gallery backend.
type GalleryConfig struct {
	Storage  string         `mapstructure:"storage" validate:"oneof=file mysql"`
	FilePath string         `mapstructure:"file_path" validate:"required_if=Storage file"`
	Database DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig configures the MySQL backend. The password is bound to the
// DB_PASSWORD environment variable only, never read from the file.
type DatabaseConfig struct {
	Host     string            `mapstructure:"host"`
	Port     int               `mapstructure:"port"`
	Database string            `mapstructure:"database"`
	Username string            `mapstructure:"username"`
	Password string            `mapstructure:"password"`
	TLS      bool              `mapstructure:"tls"`
	Params   map[string]string `mapstructure:"params"`
	Key      string            `mapstructure:"key"`
}

// ConfigLoader reads and validates a Config.
type ConfigLoader struct {
	viper     *viper.Viper
	validator *schema.Validator
}

// NewConfigLoader creates a loader. An empty configFile falls back to
// config.yaml in the working directory or in $HOME/.config/art-explorer.
func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/art-explorer")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

// Load reads the configuration and validates it.
func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("catalog.base_url", "https://api.artic.edu/api/v1")
	v.SetDefault("catalog.timeout_seconds", 30)
	v.SetDefault("catalog.artwork_page_size", catalog.DefaultArtworkPageSize)
	v.SetDefault("catalog.artist_page_size", catalog.DefaultArtistPageSize)
	v.SetDefault("gallery.storage", "file")
	v.SetDefault("gallery.file_path", "art-explorer-gallery.json")
	v.SetDefault("gallery.database.host", "localhost")
	v.SetDefault("gallery.database.port", 3306)
	v.SetDefault("gallery.database.database", "art_explorer")
	v.SetDefault("gallery.database.username", "user")
	v.SetDefault("gallery.database.key", gallery.DefaultStorageKey)

	// The database password comes from the environment only.
	if err := v.BindEnv("gallery.database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
