package cmd

import (
	"fmt"

	"github.com/mkreps/underlords/internal/render"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info (hero|alliance) <name>",
	Short: "Show an entity card",
	Long: `Show the info card for a hero or an alliance.

Hero cards list the shop tier and the hero's alliances with the aced one
marked by *; alliance cards list activation thresholds, the effect, and
every member hero.

Examples:
  underlords info hero Axe
  underlords info alliance Savage`,
	Args: cobra.ExactArgs(2),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	_, universe, err := loadUniverse()
	if err != nil {
		return err
	}

	kind, name := args[0], args[1]
	switch kind {
	case "hero", "h":
		h, err := universe.Hero(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.HeroCard(h))
	case "alliance", "a":
		a, err := universe.Alliance(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.AllianceCard(a))
	default:
		return fmt.Errorf("unknown entity type %q: expected hero or alliance", kind)
	}
	return nil
}
