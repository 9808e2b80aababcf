package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete underlords configuration
type Config struct {
	// Data is the hero/alliance data file path.
	// If empty, defaults to "underlords.json" inside the config directory.
	// Supports ~ for home directory expansion; relative paths resolve
	// against the working directory.
	Data string `mapstructure:"data"`

	// Limit is the roster capacity every team is built against (default: 10)
	Limit int `mapstructure:"limit"`

	// Excluded lists hero names removed from the universe at load time.
	// Matching is case-insensitive.
	Excluded []string `mapstructure:"excluded"`

	Logging LoggingConfig `mapstructure:"logging"`
	Explore ExploreConfig `mapstructure:"explore"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Level is the log level: "DEBUG", "INFO", "WARN", "ERROR" (default: "INFO")
	Level string `mapstructure:"level"`
	// Dir is the directory log files are written to; empty logs to stderr
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// ExploreConfig controls exploration defaults
type ExploreConfig struct {
	// Top is how many ranked compositions the explore command prints (default: 20)
	Top int `mapstructure:"top"`
	// Parallel fans first-level exploration branches across workers (default: false)
	Parallel bool `mapstructure:"parallel"`
	// MaxWorkers caps concurrent branches when parallel is enabled (0 = one per branch)
	MaxWorkers int `mapstructure:"max_workers"`
}

// ResolveDataFile returns the resolved hero data file path.
// If Data is empty, it returns the default file inside the config directory.
// If Data starts with ~, it expands to the user's home directory.
// Relative paths are left relative so they resolve against the working directory.
func (c *Config) ResolveDataFile() string {
	if c.Data == "" {
		return filepath.Join(ConfigDir(), "underlords.json")
	}

	path := c.Data

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Data:     "", // Empty means use default: <config dir>/underlords.json
		Limit:    10,
		Excluded: []string{},
		Logging: LoggingConfig{
			Level:      "INFO",
			Dir:        "", // Empty means log to stderr
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Explore: ExploreConfig{
			Top:        20,
			Parallel:   false,
			MaxWorkers: 0, // Zero means one goroutine per branch
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("data", defaults.Data)
	viper.SetDefault("limit", defaults.Limit)
	viper.SetDefault("excluded", defaults.Excluded)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	// Explore defaults
	viper.SetDefault("explore.top", defaults.Explore.Top)
	viper.SetDefault("explore.parallel", defaults.Explore.Parallel)
	viper.SetDefault("explore.max_workers", defaults.Explore.MaxWorkers)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "underlords")
	}
	// Fall back to ~/.config/underlords
	home, err := os.UserHomeDir()
	if err != nil {
		return ".underlords"
	}
	return filepath.Join(home, ".config", "underlords")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
