package team

import (
	"github.com/mkreps/underlords/internal/errors"
	"github.com/mkreps/underlords/internal/hero"
)

// DefaultLimit is the roster hero limit used when no option overrides it.
const DefaultLimit = 10

// Option configures a Team at construction.
type Option func(*Team)

// WithLimit sets the roster hero limit. Values below one are ignored.
func WithLimit(limit int) Option {
	return func(t *Team) {
		if limit > 0 {
			t.limit = limit
		}
	}
}

// Team is a roster under construction. The cached size is the roster cost as
// of the last successful level claim; AddHero leaves it untouched, matching
// the claim-driven accounting the planner displays.
type Team struct {
	size      int
	limit     int
	alliances *Alliances
}

// NewTeam creates an empty team.
func NewTeam(opts ...Option) *Team {
	t := &Team{limit: DefaultLimit, alliances: NewAlliances()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the cached roster cost. Alliances.Size is the live figure.
func (t *Team) Size() int { return t.size }

// Limit returns the roster hero limit.
func (t *Team) Limit() int { return t.limit }

// Alliances returns the team's claim container. Shared with the team;
// callers must treat it as read-only.
func (t *Team) Alliances() *Alliances { return t.alliances }

// Copy returns an independent team. Mutating the copy never affects the
// original, which is what makes exploration branches safe to run anywhere.
func (t *Team) Copy() *Team {
	return &Team{size: t.size, limit: t.limit, alliances: t.alliances.Copy()}
}

// Equal reports whether two teams describe the same composition: equal
// cached size, limit and claim containers.
func (t *Team) Equal(other *Team) bool {
	if other == nil {
		return false
	}
	return t.size == other.size &&
		t.limit == other.limit &&
		t.alliances.Equal(other.alliances)
}

// Add claims the given synergy level for the alliance, capped at the
// alliance's highest tier. A claim at or below the current level leaves the
// team untouched and returns nil.
//
// On success the claim's cost is reserved in the roster and the convergence
// pass runs; on failure the team is exactly as it was.
func (t *Team) Add(a *hero.Alliance, level int) error {
	return t.add(a, []int{min(level, a.MaxTier())})
}

// AddMax claims the highest synergy level that fits the roster, walking the
// alliance's tiers from the top down.
func (t *Team) AddMax(a *hero.Alliance) error {
	levels := make([]int, 0, a.MaxTier())
	for level := a.MaxTier(); level >= 1; level-- {
		levels = append(levels, level)
	}
	return t.add(a, levels)
}

// add claims the first candidate level that fits the roster limit.
//
// Candidates at or below the current claim are skipped; if none remain the
// call is a no-op. Otherwise the cost of each candidate is probed against
// the limit after crediting roster members and reservable overlap, and the
// first fit is committed. No candidate fitting is a capacity error carrying
// the cheapest probed cost.
func (t *Team) add(a *hero.Alliance, candidates []int) error {
	pool := t.alliances.Pool()

	// Overlap reservation. When the alliance is newly engaged, heroes shared
	// with claims that still have outstanding demand can fill both claims at
	// once, so they are credited against the candidate cost. The working set
	// accumulates every shared roster so a hero reserved once is not counted
	// again by a later claim.
	working := pool.Clone()
	reserved := 0
	if !t.alliances.Engaged(a) {
		for _, st := range t.alliances.States() {
			if st.alliance.Name == a.Name || st.OutstandingSize() <= 0 {
				continue
			}
			shared := st.alliance.Heroes.Intersect(a.Heroes)
			reserved += min(st.OutstandingSize(), len(shared.Diff(working)))
			working.Merge(shared)
		}
	}
	working.Subtract(pool)

	view := t.alliances.View(a)
	size := t.alliances.Size()
	chosen, probed := 0, 0
	eligible := false
	for _, level := range candidates {
		if level <= view.Level() {
			continue
		}
		eligible = true
		probed = size + view.LevelUpAmount(level, reserved)
		if probed <= t.limit {
			chosen = level
			break
		}
	}
	if !eligible {
		return nil
	}
	if chosen == 0 {
		return errors.NewCapacityError(a.Name, probed, t.limit).
			WithOverlap(working.SortedNames())
	}

	snapshot := t.alliances.Copy()
	prevSize := t.size
	t.alliances.mixed.Merge(working)
	t.size = probed
	t.alliances.Set(a, chosen)

	// The probe credits overlap optimistically; re-derive the real cost and
	// back out if the commitment overshot.
	if got := t.alliances.Size(); got > t.limit {
		t.alliances = snapshot
		t.size = prevSize
		return errors.NewCapacityError(a.Name, got, t.limit).
			WithOverlap(working.SortedNames())
	}
	if err := t.postCheck(snapshot, prevSize); err != nil {
		return err
	}
	t.postAdd()
	return nil
}

// AddHero recruits a specific hero into the confirmed partition. A hero some
// engaged claim is still waiting for joins even at the roster limit; anyone
// else needs a free slot. The cached size is not touched.
func (t *Team) AddHero(h *hero.Hero) error {
	if !t.reservedFor(h) && t.alliances.Size()+1 > t.limit {
		return errors.NewHeroCapacityError(h.Name, t.alliances.Size()+1, t.limit)
	}
	snapshot := t.alliances.Copy()
	t.alliances.team.Add(h)
	t.alliances.mixed.Remove(h)
	if err := t.postCheck(snapshot, t.size); err != nil {
		return err
	}
	t.postAdd()
	return nil
}

// reservedFor reports whether an engaged claim with outstanding demand
// counts the hero among its remaining candidates.
func (t *Team) reservedFor(h *hero.Hero) bool {
	for _, st := range t.alliances.States() {
		if st.OutstandingSize() > 0 && st.OutsideHeroes().Contains(h) {
			return true
		}
	}
	return false
}

// postCheck verifies that every engaged claim is still satisfiable: enough
// heroes outside the roster to cover the outstanding demand, and enough
// reserved members to cover the claim's mixed share. The first violation
// restores the snapshot and reports the shortfall.
func (t *Team) postCheck(snapshot *Alliances, prevSize int) error {
	for _, st := range t.alliances.States() {
		if outside := st.OutsideHeroes(); len(outside) < st.OutstandingSize() {
			need, names := st.OutstandingSize(), outside.SortedNames()
			t.alliances = snapshot
			t.size = prevSize
			return errors.NewCompositionError(st.alliance.Name, errors.ShortfallOutstanding, need, names)
		}
		if mixed := st.MixedHeroes(); len(mixed) < st.MixedSize() {
			need, names := st.MixedSize(), mixed.SortedNames()
			t.alliances = snapshot
			t.size = prevSize
			return errors.NewCompositionError(st.alliance.Name, errors.ShortfallMixed, need, names)
		}
	}
	return nil
}

// postAdd is the convergence pass run after every successful mutation. Each
// step evaluates all claims against the partitions as they stood when the
// step began, then applies its promotions at once.
func (t *Team) postAdd() {
	t.promoteOutstanding()
	t.promoteMixed()
	t.recomputeLevels()
}

// promoteOutstanding reserves the remaining candidates of every claim whose
// outstanding demand leaves no choice about who fills it.
func (t *Team) promoteOutstanding() {
	promote := make(hero.Set)
	for _, st := range t.alliances.States() {
		if outside := st.OutsideHeroes(); len(outside) <= st.OutstandingSize() {
			promote.Merge(outside)
		}
	}
	t.alliances.mixed.Merge(promote)
}

// promoteMixed confirms the reserved members of every claim that needs its
// whole reserved share.
func (t *Team) promoteMixed() {
	promote := make(hero.Set)
	for _, st := range t.alliances.States() {
		if mixed := st.MixedHeroes(); len(mixed) <= st.MixedSize() {
			promote.Merge(mixed)
		}
	}
	t.alliances.team.Merge(promote)
	t.alliances.mixed.Subtract(promote)
}

// recomputeLevels re-derives claim levels from the confirmed partition.
// Levels only ever rise here, and an alliance whose confirmed members reach
// its first threshold is engaged even if nobody claimed it. Confirmed heroes
// are walked in (tier, name) order, each hero's alliances in declared order.
func (t *Team) recomputeLevels() {
	counts := make(map[string]int)
	var order []*hero.Alliance
	for _, h := range t.alliances.team.Sorted() {
		for _, a := range h.Alliances {
			if _, seen := counts[a.Name]; !seen {
				order = append(order, a)
			}
			counts[a.Name]++
		}
	}
	for _, a := range order {
		floor := counts[a.Name] / a.Level
		if floor < 1 {
			continue
		}
		if st := t.alliances.Get(a); st != nil {
			if floor > st.level {
				st.level = floor
			}
			continue
		}
		t.alliances.Set(a, floor)
	}
}
