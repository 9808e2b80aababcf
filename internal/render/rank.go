package render

import (
	"slices"

	"github.com/mkreps/underlords/internal/team"
)

// Rank scores a composition for sorting: the sum of every claimed alliance's
// threshold size divided by the roster cost. Higher means more synergy value
// per slot. An empty team ranks 0.
func Rank(t *team.Team) float64 {
	al := t.Alliances()
	cost := al.Size()
	if cost == 0 {
		return 0
	}

	total := 0
	for _, st := range al.States() {
		total += st.ClaimSize()
	}
	return float64(total) / float64(cost)
}

// SortTeams orders compositions ascending by Rank so the best prints last.
// Equal ranks put the larger roster first.
func SortTeams(teams []*team.Team) {
	slices.SortStableFunc(teams, func(a, b *team.Team) int {
		ra, rb := Rank(a), Rank(b)
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		}
		return b.Alliances().Size() - a.Alliances().Size()
	})
}
