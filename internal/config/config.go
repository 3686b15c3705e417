// Package config loads the YAML configuration and applies environment
// overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/pagelayout/internal/config/colors"
	"github.com/thenoetrevino/pagelayout/internal/models"
)

const (
	DefaultAPIURL     = "https://api.monday.com/v2"
	DefaultAPIVersion = "2024-10"
	DefaultTimeout    = 30 * time.Second
)

// ErrMissingToken indicates no API token was configured
var ErrMissingToken = errors.New("api token is not set (api.token or PAGELAYOUT_API_TOKEN)")

// ErrMissingMetadataBoard indicates the metadata board id was not configured
var ErrMissingMetadataBoard = errors.New("metadata board id is not set (metadata_board_id or PAGELAYOUT_METADATA_BOARD_ID)")

// APIConfig configures the remote GraphQL endpoint
type APIConfig struct {
	URL     string        `yaml:"url" env:"PAGELAYOUT_API_URL"`
	Token   string        `yaml:"token" env:"PAGELAYOUT_API_TOKEN"`
	Version string        `yaml:"version" env:"PAGELAYOUT_API_VERSION"`
	Timeout time.Duration `yaml:"timeout" env:"PAGELAYOUT_TIMEOUT"`
}

// ViewerConfig is the profile visibility rules are evaluated against
type ViewerConfig struct {
	Title   string `yaml:"title" env:"PAGELAYOUT_VIEWER_TITLE"`
	Profile string `yaml:"profile" env:"PAGELAYOUT_VIEWER_PROFILE"`
	Role    string `yaml:"role" env:"PAGELAYOUT_VIEWER_ROLE"`
}

// ViewerProfile converts the configured viewer into a models.ViewerProfile
func (v ViewerConfig) ViewerProfile() models.ViewerProfile {
	return models.ViewerProfile{Title: v.Title, Profile: v.Profile, Role: v.Role}
}

// Config represents the application configuration
type Config struct {
	API             APIConfig          `yaml:"api"`
	MetadataBoardID string             `yaml:"metadata_board_id" env:"PAGELAYOUT_METADATA_BOARD_ID"`
	DefaultBoardID  string             `yaml:"default_board" env:"PAGELAYOUT_BOARD"`
	Viewer          ViewerConfig       `yaml:"viewer"`
	KeyMappings     KeyMappings        `yaml:"key_mappings"`
	ColorScheme     colors.ColorScheme `yaml:"theme"`
}

// loadThemeFile merges the theme from PAGELAYOUT_THEME_FILE when set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("PAGELAYOUT_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory, then applies
// environment overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(&config)

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns a configuration with every default applied and nothing read
// from disk or the environment
func Default() *Config {
	var config Config
	config.applyDefaults()
	return &config
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// The file holds the API token
	return os.WriteFile(configPath, data, 0o600)
}

// Path returns where the config file is read from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pagelayout", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "pagelayout", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.API.URL = strings.TrimSpace(c.API.URL)
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.API.Version == "" {
		c.API.Version = DefaultAPIVersion
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	c.MetadataBoardID = strings.TrimSpace(c.MetadataBoardID)
	c.DefaultBoardID = strings.TrimSpace(c.DefaultBoardID)
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// Validate reports settings required before any remote call
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.Token) == "" {
		return ErrMissingToken
	}
	if c.MetadataBoardID == "" {
		return ErrMissingMetadataBoard
	}
	return nil
}
