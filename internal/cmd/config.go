package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/mkreps/underlords/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify configuration",
	Long: `View or modify configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  underlords config set limit 10
  underlords config set logging.level DEBUG
  underlords config set explore.top 50

Valid keys:
  data                 - Hero data file path
  limit                - Roster capacity teams are built against
  logging.level        - Log level (DEBUG, INFO, WARN, ERROR)
  logging.dir          - Log directory (empty logs to stderr)
  logging.max_size_mb  - Log file size before rotation
  logging.max_backups  - Rotated log files to keep
  explore.top          - Compositions the explore command prints
  explore.parallel     - Fan exploration across workers (true/false)
  explore.max_workers  - Worker cap for parallel exploration (0 = unbounded)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/underlords/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "data: %s\n", cfg.ResolveDataFile())
	fmt.Fprintf(out, "limit: %d\n", cfg.Limit)
	if len(cfg.Excluded) > 0 {
		fmt.Fprintf(out, "excluded: %s\n", strings.Join(cfg.Excluded, ", "))
	} else {
		fmt.Fprintf(out, "excluded: (none)\n")
	}

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	if cfg.Logging.Dir != "" {
		fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.Dir)
	} else {
		fmt.Fprintf(out, "  dir: (stderr)\n")
	}
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)

	fmt.Fprintln(out, "explore:")
	fmt.Fprintf(out, "  top: %d\n", cfg.Explore.Top)
	fmt.Fprintf(out, "  parallel: %v\n", cfg.Explore.Parallel)
	fmt.Fprintf(out, "  max_workers: %d\n", cfg.Explore.MaxWorkers)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	validKeys := map[string]string{
		"data":                "string",
		"limit":               "int",
		"logging.level":       "string",
		"logging.dir":         "string",
		"logging.max_size_mb": "int",
		"logging.max_backups": "int",
		"explore.top":         "int",
		"explore.parallel":    "bool",
		"explore.max_workers": "int",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'underlords config set --help' to see valid keys", key)
	}

	var typedValue interface{}
	switch keyType {
	case "string":
		if key == "logging.level" {
			level := strings.ToUpper(value)
			if !slices.Contains(config.ValidLogLevels(), level) {
				return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidLogLevels(), ", "))
			}
			value = level
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'underlords config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configContent := `# Underlords configuration

# Hero data file. Empty means <config dir>/underlords.json.
data: ""

# Roster capacity teams are built against.
limit: 10

# Hero names to drop when loading the data file.
excluded: []

# Logging settings
logging:
  # Log level: DEBUG, INFO, WARN, ERROR
  level: INFO
  # Log directory. Empty logs to stderr; the shell always logs to a file.
  dir: ""
  # Rotate the log file once it reaches this size
  max_size_mb: 10
  # Rotated log files to keep
  max_backups: 3

# Exploration settings
explore:
  # Compositions the explore command prints
  top: 20
  # Fan the first expansion level across workers
  parallel: false
  # Worker cap for parallel exploration (0 = one worker per branch)
  max_workers: 0
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize exploration and logging.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/underlords/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: UNDERLORDS_* (e.g., UNDERLORDS_LOGGING_LEVEL)")

	return nil
}
