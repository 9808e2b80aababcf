// Package render turns heroes, alliances and team compositions into the
// plain-text blocks the shell and CLI print. All output is deterministic:
// hero lists appear in (tier, name) order and alliance entries in engagement
// order. Styling is left to the callers.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkreps/underlords/internal/hero"
)

// HeroNames renders a hero set as "Name(tier), Name(tier)" in (tier, name) order.
func HeroNames(s hero.Set) string {
	heroes := s.Sorted()
	parts := make([]string, len(heroes))
	for i, h := range heroes {
		parts[i] = fmt.Sprintf("%s(%d)", h.Name, h.Tier)
	}
	return strings.Join(parts, ", ")
}

// Thresholds renders an alliance's activation sizes as "2/4/6".
func Thresholds(a *hero.Alliance) string {
	sizes := a.Sizes()
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "/")
}

// AllianceCard renders the info card for an alliance: name with thresholds,
// effect, and the member heroes.
func AllianceCard(a *hero.Alliance) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n  %s\n  Heroes:", a.Name, Thresholds(a), a.Effect)
	for _, h := range a.Heroes.Sorted() {
		fmt.Fprintf(&sb, "\n    %s(%d)", h.Name, h.Tier)
	}
	return sb.String()
}

// HeroCard renders the info card for a hero. Alliances appear in declared
// order; the one the hero aces is marked with a *.
func HeroCard(h *hero.Hero) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%d)\n  Alliances:", h.Name, h.Tier)
	for _, a := range h.Alliances {
		indent := "    "
		if h.Ace != nil && h.Ace.Name == a.Name {
			indent = "  * "
		}
		fmt.Fprintf(&sb, "\n%s%s (%s)", indent, a.Name, Thresholds(a))
	}
	return sb.String()
}
