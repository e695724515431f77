package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"tasklist/internal/logging"
	"tasklist/internal/render"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	// File is the TOML file to read; empty means DefaultFile, which may be absent.
	File string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) loadFile() error {
	path := l.File
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	md, err := toml.DecodeFile(path, l.config)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &ConfigError{Field: "config", Message: fmt.Sprintf("read %s: %v", path, err)}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logging.Debugf("ignoring unknown config keys in %s: %v", path, undecoded)
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend    *string
	Path       *string
	SQLitePath *string

	// Display overrides
	Color    *render.ColorMode
	Wrap     *render.WrapMode
	Timezone *string

	// Logging overrides
	LogLevel  *string
	LogFormat *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.Path != nil {
		config.Storage.Path = *overrides.Path
	}
	if overrides.SQLitePath != nil {
		config.Storage.SQLitePath = *overrides.SQLitePath
	}

	if overrides.Color != nil {
		config.Display.Color = *overrides.Color
	}
	if overrides.Wrap != nil {
		config.Display.Wrap = *overrides.Wrap
	}
	if overrides.Timezone != nil {
		config.Display.Timezone = *overrides.Timezone
	}

	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}
}
