package cmd

import (
	"strings"

	"github.com/mkreps/underlords/internal/config"
	"github.com/mkreps/underlords/internal/hero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "underlords",
	Short: "Dota Underlords team composition explorer",
	Long: `Underlords builds and explores team compositions: it tracks which
alliance tiers a roster claims, how many board slots those claims cost,
and which hero additions unlock the next tier.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/underlords/config.yaml)")
	rootCmd.PersistentFlags().StringP("data", "d", "", "hero data file (default is <config dir>/underlords.json)")
	rootCmd.PersistentFlags().Int("limit", 10, "roster capacity teams are built against")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("limit", rootCmd.PersistentFlags().Lookup("limit"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/underlords")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("UNDERLORDS")
	// Replace dots with underscores for nested keys in env vars
	// e.g., UNDERLORDS_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadUniverse loads the configuration and the hero data file it points at.
func loadUniverse() (*config.Config, *hero.Universe, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	universe, err := hero.Load(cfg.ResolveDataFile(), cfg.Excluded)
	if err != nil {
		return nil, nil, err
	}
	return cfg, universe, nil
}
