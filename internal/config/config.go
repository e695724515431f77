package config

import (
	"os"
	"strings"
	"time"

	"tasklist/internal/render"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "tasklist.toml"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the task list application
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

// StorageConfig selects where the task list is loaded from and saved to
type StorageConfig struct {
	Backend    string `toml:"backend" env:"TASKLIST_BACKEND"`
	Path       string `toml:"path" env:"TASKLIST_FILE"`
	SQLitePath string `toml:"sqlite_path" env:"TASKLIST_DB"`
}

// DisplayConfig holds table rendering configuration
type DisplayConfig struct {
	Color    render.ColorMode `toml:"color" env:"TASKLIST_COLOR"`
	Wrap     render.WrapMode  `toml:"wrap" env:"TASKLIST_WRAP"`
	Timezone string           `toml:"timezone" env:"TASKLIST_TIMEZONE"`
}

// LoggingConfig holds diagnostic logging configuration
type LoggingConfig struct {
	Level  string `toml:"level" env:"TASKLIST_LOG_LEVEL"`
	Format string `toml:"format" env:"TASKLIST_LOG_FORMAT"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:    BackendJSON,
			Path:       "tasklist.json",
			SQLitePath: "tasklist.db",
		},
		Display: DisplayConfig{
			Color:    render.ColorAuto,
			Wrap:     render.WrapChar,
			Timezone: "UTC",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TASKLIST_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if path := os.Getenv("TASKLIST_FILE"); path != "" {
		c.Storage.Path = path
	}
	if path := os.Getenv("TASKLIST_DB"); path != "" {
		c.Storage.SQLitePath = path
	}

	if color := os.Getenv("TASKLIST_COLOR"); color != "" {
		c.Display.Color = render.ColorMode(color)
	}
	if wrap := os.Getenv("TASKLIST_WRAP"); wrap != "" {
		c.Display.Wrap = render.WrapMode(wrap)
	}
	if tz := os.Getenv("TASKLIST_TIMEZONE"); tz != "" {
		c.Display.Timezone = tz
	}

	if level := os.Getenv("TASKLIST_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TASKLIST_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}

	return nil
}

// Validate validates the configuration and normalizes enumerated values
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendJSON:
		if c.Storage.Path == "" {
			return &ConfigError{Field: "storage.path", Message: "task file path cannot be empty"}
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return &ConfigError{Field: "storage.sqlite_path", Message: "database path cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be json or sqlite, got " + c.Storage.Backend}
	}

	color, err := render.ParseColorMode(string(c.Display.Color))
	if err != nil {
		return &ConfigError{Field: "display.color", Message: err.Error()}
	}
	c.Display.Color = color

	wrap, err := render.ParseWrapMode(string(c.Display.Wrap))
	if err != nil {
		return &ConfigError{Field: "display.wrap", Message: err.Error()}
	}
	c.Display.Wrap = wrap

	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "display.timezone", Message: err.Error()}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json", "logfmt":
	default:
		return &ConfigError{Field: "logging.format", Message: "format must be text, json or logfmt"}
	}

	return nil
}

// Location returns the time zone used to decide what "today" is
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}

// StoragePath returns the file the selected backend reads and writes
func (c *Config) StoragePath() string {
	if c.Storage.Backend == BackendSQLite {
		return c.Storage.SQLitePath
	}
	return c.Storage.Path
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
