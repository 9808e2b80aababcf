package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mkreps/underlords/internal/hero"
	"github.com/mkreps/underlords/internal/logging"
	"github.com/mkreps/underlords/internal/render"
	"github.com/mkreps/underlords/internal/team"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [alliance=level]...",
	Short: "Search for the strongest team compositions",
	Long: `Search every way of upgrading the team until no alliance claim can be
raised further, then print the strongest compositions found.

Each argument seeds the starting team with an alliance claim before the
search begins, e.g. "Warrior=2" claims the second Warrior tier. With no
arguments exploration starts from an empty team.

Compositions print weakest first, so the best one ends up nearest the
prompt.`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().Int("top", 20, "number of compositions to print")
	exploreCmd.Flags().Bool("parallel", false, "fan the first expansion level across workers")
	_ = viper.BindPFlag("explore.top", exploreCmd.Flags().Lookup("top"))
	_ = viper.BindPFlag("explore.parallel", exploreCmd.Flags().Lookup("parallel"))
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, universe, err := loadUniverse()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()
	log := logger.WithCommand("explore")

	g := team.NewGlobal(universe.Alliances(), team.WithLimit(cfg.Limit))
	for _, arg := range args {
		name, level, err := parseSeed(arg)
		if err != nil {
			return err
		}
		alliance, err := universe.Alliance(name)
		if err != nil {
			return err
		}
		if err := g.Add(alliance, level); err != nil {
			return fmt.Errorf("seeding %s=%d: %w", name, level, err)
		}
	}

	skip := func(a *hero.Alliance, err error) {
		log.Debug("branch dropped", "alliance", a.Name, "error", err)
	}

	var results []*team.Team
	if cfg.Explore.Parallel {
		log.Info("exploring in parallel", "max_workers", cfg.Explore.MaxWorkers, "seeds", len(args))
		results = g.ExpandParallel(nil,
			team.WithSkipHandler(skip),
			team.WithMaxWorkers(cfg.Explore.MaxWorkers))
	} else {
		log.Info("exploring", "seeds", len(args))
		results = slices.Collect(g.RecursiveIncrease(nil, team.WithSkipHandler(skip)))
	}
	log.Info("exploration finished", "compositions", len(results))

	render.SortTeams(results)
	if top := cfg.Explore.Top; top > 0 && len(results) > top {
		results = results[len(results)-top:]
	}

	blocks := make([]string, len(results))
	for i, t := range results {
		blocks[i] = render.TeamLine(t)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(blocks, "\n\n"))
	return nil
}

// parseSeed splits an "alliance=level" seed argument.
func parseSeed(arg string) (string, int, error) {
	name, levelStr, ok := strings.Cut(arg, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid seed %q: expected alliance=level", arg)
	}
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid seed %q: level must be a number", arg)
	}
	if level < 1 {
		return "", 0, fmt.Errorf("invalid seed %q: level must be at least 1", arg)
	}
	return name, level, nil
}
