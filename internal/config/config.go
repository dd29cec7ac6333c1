// Package config holds the sheetbook configuration, loaded through viper
// from a YAML file, environment variables (SHEETBOOK_ prefix), and defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete sheetbook configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig describes the remote contact collection
type APIConfig struct {
	// BaseURL is the root of the SheetDB-compatible API, e.g.
	// "https://sheetdb.io/api/v1"
	BaseURL string `mapstructure:"base_url"`
	// SheetID is the sheet identifier appended to BaseURL. May be empty if
	// BaseURL already points at the collection resource.
	SheetID string `mapstructure:"sheet_id"`
	// TimeoutSeconds is the HTTP client timeout for every operation
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// CollectionURL returns the full URL of the contact collection resource.
func (a *APIConfig) CollectionURL() string {
	base := strings.TrimRight(a.BaseURL, "/")
	if a.SheetID == "" {
		return base
	}
	return base + "/" + a.SheetID
}

// Timeout returns the HTTP client timeout as a duration.
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// NotificationSeconds is how long the success banner stays visible
	NotificationSeconds int `mapstructure:"notification_seconds"`
	// MaxNameWidth caps the rendered width of the name column
	MaxNameWidth int `mapstructure:"max_name_width"`
}

// NotificationWindow returns the banner display duration.
func (t *TUIConfig) NotificationWindow() time.Duration {
	return time.Duration(t.NotificationSeconds) * time.Second
}

// LoggingConfig controls the diagnostic log
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the directory for sheetbook.log; empty means stderr, which is
	// only usable by the non-interactive subcommands
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://sheetdb.io/api/v1",
			SheetID:        "",
			TimeoutSeconds: 30,
		},
		TUI: TUIConfig{
			NotificationSeconds: 3,
			MaxNameWidth:        30,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   filepath.Join(ConfigDir(), "logs"),
		},
	}
}

// SetDefaults registers the default values with viper so they apply even
// without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.sheet_id", defaults.API.SheetID)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	viper.SetDefault("tui.notification_seconds", defaults.TUI.NotificationSeconds)
	viper.SetDefault("tui.max_name_width", defaults.TUI.MaxNameWidth)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals the current viper state into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the directory for the sheetbook config file.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sheetbook"
	}
	return filepath.Join(home, ".config", "sheetbook")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
