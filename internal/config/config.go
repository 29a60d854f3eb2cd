// Package config resolves settings from the environment and an optional
// .env file. Command-line flags are applied on top by the shell.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/roach88/terminus/internal/store"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TERMINUS"

// Setting keys, read from TERMINUS_<KEY>.
const (
	KeyDB        = "db"
	KeyStoreKey  = "key"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Accepted values for the logging settings.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"console", "json"}
)

// Config holds resolved settings.
type Config struct {
	// DBPath is the SQLite file the Document is saved in.
	DBPath string

	// Key is the storage key the Document is saved under.
	Key string

	LogLevel  string
	LogFormat string
}

// Load reads the given .env files (or ./.env when none are named), then the
// TERMINUS_* environment. Variables already set in the environment win over
// .env values. Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDB, DefaultDBPath())
	v.SetDefault(KeyStoreKey, store.DefaultKey)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")

	cfg := &Config{
		DBPath:    v.GetString(KeyDB),
		Key:       v.GetString(KeyStoreKey),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("%s_DB must not be empty", EnvPrefix)
	}
	if c.Key == "" {
		return fmt.Errorf("%s_KEY must not be empty", EnvPrefix)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid %s_LOG_LEVEL %q: must be one of %v", EnvPrefix, c.LogLevel, LogLevels)
	}
	if !slices.Contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("invalid %s_LOG_FORMAT %q: must be one of %v", EnvPrefix, c.LogFormat, LogFormats)
	}
	return nil
}

// DefaultDBPath returns <user config dir>/terminus/terminus.db, or
// terminus.db in the working directory when there is no config dir.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "terminus.db"
	}
	return filepath.Join(dir, "terminus", "terminus.db")
}
