// Package config loads photoyard settings from a config file, environment
// variables, and defaults, in that order of increasing precedence for the
// environment and with command-line flags applied on top by the commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ErrWatchDirMissing is returned by Validate when the watch directory is
// unset or does not exist.
var ErrWatchDirMissing = errors.New("watch directory is not set or does not exist")

// Config holds all runtime settings.
type Config struct {
	// WatchDir is the inbox directory the daemon monitors.
	WatchDir string `mapstructure:"watch_dir"`
	// ProcessedDir is the name of the subfolder tagged files move into.
	ProcessedDir string `mapstructure:"processed_dir"`
	// Patterns are the base-name globs that mark a file as a candidate.
	Patterns []string `mapstructure:"patterns"`
	// Exiftool is the exiftool binary path; empty means resolve via PATH.
	Exiftool string `mapstructure:"exiftool"`
	// SettleMS is how long a file must stay quiet before processing.
	SettleMS int `mapstructure:"settle_ms"`
	Verbose  bool `mapstructure:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ProcessedDir: "processed",
		Patterns:     []string{"*.tiff", "*.tif", "*.jpg", "*.jpeg"},
		Exiftool:     "exiftool",
		SettleMS:     500,
	}
}

// Load reads the config file (explicit path, or photoyard.yaml in the
// current directory or $HOME) and PHOTOYARD_* environment variables over
// the defaults. A missing config file is not an error.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("processed_dir", def.ProcessedDir)
	v.SetDefault("patterns", def.Patterns)
	v.SetDefault("exiftool", def.Exiftool)
	v.SetDefault("settle_ms", def.SettleMS)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("photoyard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("PHOTOYARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings a watch or process run depends on.
func (c Config) Validate() error {
	if c.WatchDir == "" {
		return ErrWatchDirMissing
	}
	info, err := os.Stat(c.WatchDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrWatchDirMissing, c.WatchDir)
	}
	if len(c.Patterns) == 0 {
		return errors.New("at least one filename pattern is required")
	}
	if c.SettleMS < 0 {
		return errors.New("settle_ms must not be negative")
	}
	return nil
}
