package cmd

import (
	"fmt"
	"strings"

	"github.com/mkreps/underlords/internal/render"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list (heroes|alliances)",
	Short: "List the heroes or alliances in the data set",
	Long: `List every hero or alliance the data file defines, after exclusions.

Heroes print one per line with their tier and alliance memberships.
Alliances print with their claim thresholds and member count.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, universe, err := loadUniverse()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch kind := args[0]; kind {
	case "heroes", "hero", "h":
		for _, h := range universe.Heroes() {
			names := make([]string, len(h.Alliances))
			for i, a := range h.Alliances {
				names[i] = a.Name
			}
			fmt.Fprintf(out, "%s(%d)  %s\n", h.Name, h.Tier, strings.Join(names, ", "))
		}
	case "alliances", "alliance", "a":
		for _, a := range universe.Alliances() {
			fmt.Fprintf(out, "%s (%s)  %d heroes\n", a.Name, render.Thresholds(a), len(a.Heroes))
		}
	default:
		return fmt.Errorf("unknown entity type %q: expected heroes or alliances", kind)
	}
	return nil
}
