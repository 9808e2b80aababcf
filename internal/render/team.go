package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkreps/underlords/internal/hero"
	"github.com/mkreps/underlords/internal/team"
)

// StateBlock renders one engaged alliance's partition lines: the claimed
// level followed by the team, mixed and still-outstanding hero groups.
func StateBlock(st *team.AllianceState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %s %d", st.Alliance().Name, st.Level())
	fmt.Fprintf(&sb, "\n    Team, %d of %s", st.TeamSize(), HeroNames(st.TeamHeroes()))
	fmt.Fprintf(&sb, "\n    Mixed, %d of %s", st.MixedSize(), HeroNames(st.MixedHeroes()))
	fmt.Fprintf(&sb, "\n    Alliance, %d of %s", st.OutstandingSize(), HeroNames(st.OutsideHeroes()))
	return sb.String()
}

// AlliancesView renders the shared team and mixed partitions followed by a
// StateBlock for every engaged alliance.
func AlliancesView(al *team.Alliances) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Team(%d): %s\n", len(al.TeamHeroes()), HeroNames(al.TeamHeroes()))
	fmt.Fprintf(&sb, "  Mixed(%d): %s\n", len(al.MixedHeroes()), HeroNames(al.MixedHeroes()))

	states := al.States()
	blocks := make([]string, len(states))
	for i, st := range states {
		blocks[i] = StateBlock(st)
	}
	sb.WriteString(strings.Join(blocks, "\n"))
	return sb.String()
}

// TeamView renders the full partition view. The header carries the roster
// cost the last level-add committed and the live cost, in that order.
func TeamView(t *team.Team) string {
	return fmt.Sprintf("Team(%d,%d):\n%s", t.Size(), t.Alliances().Size(), AlliancesView(t.Alliances()))
}

// TeamLine renders the condensed view used when listing many compositions:
// header, both partitions, and every engaged alliance with its level on a
// single line.
func TeamLine(t *team.Team) string {
	al := t.Alliances()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Team(%d,%d):\n", t.Size(), al.Size())
	fmt.Fprintf(&sb, "  Team(%d): %s\n", len(al.TeamHeroes()), HeroNames(al.TeamHeroes()))
	fmt.Fprintf(&sb, "  Mixed(%d): %s\n", len(al.MixedHeroes()), HeroNames(al.MixedHeroes()))

	states := al.States()
	entries := make([]string, len(states))
	for i, st := range states {
		entries[i] = fmt.Sprintf("  %s %d", st.Alliance().Name, st.Level())
	}
	sb.WriteString(strings.Join(entries, "  "))
	return sb.String()
}

// Roster renders the confirmed roster grouped by shop tier. The header line
// counts team heroes per tier 1-5; each hero line carries the 1-based
// engagement position of the first of its alliances the team has claimed.
func Roster(t *team.Team) string {
	al := t.Alliances()
	states := al.States()

	order := make(map[string]int, len(states))
	for i, st := range states {
		order[st.Alliance().Name] = i
	}
	position := func(h *hero.Hero) int {
		best := len(states)
		for _, a := range h.Alliances {
			if i, ok := order[a.Name]; ok && i < best {
				best = i
			}
		}
		return best + 1
	}

	heroes := al.TeamHeroes().Sorted()

	var counts [5]int
	for _, h := range heroes {
		if h.Tier >= 1 && h.Tier <= 5 {
			counts[h.Tier-1]++
		}
	}
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(parts, " "))

	tier := 0
	for _, h := range heroes {
		if h.Tier > tier {
			tier = h.Tier
			fmt.Fprintf(&sb, "\n%d:", tier)
		}
		fmt.Fprintf(&sb, "\n  %d %s", position(h), h.Name)
	}
	return sb.String()
}
