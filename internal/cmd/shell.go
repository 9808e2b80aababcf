package cmd

import (
	"path/filepath"

	"github.com/mkreps/underlords/internal/config"
	"github.com/mkreps/underlords/internal/logging"
	"github.com/mkreps/underlords/internal/tui"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the interactive team picker",
	Long: `Launch the interactive team picker shell.
Type help inside the shell to list commands. The hero data file is
watched while the shell runs; edits reload the universe automatically.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, universe, err := loadUniverse()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs always go to a file here. An
	// unset directory falls back to the state directory instead of stderr.
	dir := cfg.Logging.Dir
	if dir == "" {
		dir = filepath.Join(config.ConfigDir(), "logs")
	}
	logger, err := logging.NewLogger(dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	app := tui.New(universe, cfg, logger)
	return app.Run()
}
