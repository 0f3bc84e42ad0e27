// Package config resolves where the inventory lives and how the CLI behaves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName names the per-user data directory.
	AppName = "shelf"

	// DatabaseFile is the name of the SQLite file inside the data directory.
	DatabaseFile = "bluRays.sqlite"

	configName = "config"
	configType = "yaml"
)

// Config is the resolved configuration for one CLI invocation.
type Config struct {
	Database string `mapstructure:"database"`
	LogLevel string `mapstructure:"log_level"`
	Format   string `mapstructure:"format"`
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"database": "db",
	"format":   "format",
}

// DataDir returns the per-user application data directory,
// e.g. ~/.config/shelf on Linux or ~/Library/Application Support/shelf on macOS.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultDatabasePath returns the database location inside DataDir.
func DefaultDatabasePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFile), nil
}

// Default returns the configuration used when no file or flag is set.
func Default() (*Config, error) {
	db, err := DefaultDatabasePath()
	if err != nil {
		return nil, err
	}
	return &Config{
		Database: db,
		LogLevel: "info",
		Format:   "text",
	}, nil
}

// Load builds the configuration from defaults, an optional YAML file and
// command-line flags, in increasing order of precedence.
//
// An explicit file must exist. When file is empty, config.yaml in DataDir is
// read if present. Only flags the user actually set override file values.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	def, err := Default()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("database", def.Database)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("format", def.Format)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// EnsureDir creates the directory holding the database file.
func (c *Config) EnsureDir() error {
	dir := filepath.Dir(c.Database)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
