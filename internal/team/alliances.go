package team

import (
	"github.com/mkreps/underlords/internal/hero"
)

// Alliances is the bookkeeping core of a roster: the confirmed and reserved
// hero partitions plus one registered AllianceState per engaged alliance, in
// engagement order.
//
// Reads never register anything. View hands out a transient state for an
// alliance that may not be engaged; only Set registers a claim. This keeps
// failed probes from leaving level-0 residue behind.
type Alliances struct {
	states []*AllianceState
	index  map[string]int

	team  hero.Set
	mixed hero.Set
}

// NewAlliances creates an empty container.
func NewAlliances() *Alliances {
	return &Alliances{
		index: make(map[string]int),
		team:  make(hero.Set),
		mixed: make(hero.Set),
	}
}

// States returns the registered states in engagement order. The slice is
// shared with the container; callers must treat it as read-only.
func (c *Alliances) States() []*AllianceState {
	return c.states
}

// Get returns the registered state for the alliance, or nil when it is not
// engaged.
func (c *Alliances) Get(a *hero.Alliance) *AllianceState {
	if i, ok := c.index[a.Name]; ok {
		return c.states[i]
	}
	return nil
}

// View returns a state for the alliance without registering anything. For an
// engaged alliance it is the registered state; otherwise it is a transient
// level-0 state reading the live container.
func (c *Alliances) View(a *hero.Alliance) *AllianceState {
	if st := c.Get(a); st != nil {
		return st
	}
	return &AllianceState{alliance: a, owner: c}
}

// Set claims the given level for the alliance, registering it on first
// engagement. Re-claiming keeps the alliance's original position.
func (c *Alliances) Set(a *hero.Alliance, level int) {
	if i, ok := c.index[a.Name]; ok {
		c.states[i].level = level
		return
	}
	c.index[a.Name] = len(c.states)
	c.states = append(c.states, &AllianceState{alliance: a, level: level, owner: c})
}

// Engaged reports whether the alliance has a registered claim.
func (c *Alliances) Engaged(a *hero.Alliance) bool {
	_, ok := c.index[a.Name]
	return ok
}

// TeamHeroes returns the confirmed partition. Shared with the container;
// callers must treat it as read-only.
func (c *Alliances) TeamHeroes() hero.Set { return c.team }

// MixedHeroes returns the reserved partition. Shared with the container;
// callers must treat it as read-only.
func (c *Alliances) MixedHeroes() hero.Set { return c.mixed }

// Pool returns a fresh union of the confirmed and reserved partitions, the
// full set of heroes the roster has committed slots to.
func (c *Alliances) Pool() hero.Set {
	return c.team.Union(c.mixed)
}

// Size returns the roster cost: every hero on the roster plus every slot the
// engaged claims still demand.
func (c *Alliances) Size() int {
	total := len(c.team) + len(c.mixed)
	for _, st := range c.states {
		if n := st.OutstandingSize(); n > 0 {
			total += n
		}
	}
	return total
}

// Copy returns a deep copy. The copy shares Hero and Alliance values with
// the original but none of its bookkeeping, so mutating one container never
// affects the other.
func (c *Alliances) Copy() *Alliances {
	dup := &Alliances{
		states: make([]*AllianceState, len(c.states)),
		index:  make(map[string]int, len(c.index)),
		team:   c.team.Clone(),
		mixed:  c.mixed.Clone(),
	}
	for i, st := range c.states {
		dup.states[i] = st.copy(dup)
		dup.index[st.alliance.Name] = i
	}
	return dup
}

// Equal reports whether two containers describe the same composition: equal
// confirmed and reserved partitions and the same claimed level for every
// alliance, where an absent claim counts as level 0.
func (c *Alliances) Equal(other *Alliances) bool {
	if !c.team.Equal(other.team) || !c.mixed.Equal(other.mixed) {
		return false
	}
	for _, st := range c.states {
		if st.level != other.levelOf(st.alliance.Name) {
			return false
		}
	}
	for _, st := range other.states {
		if st.level != c.levelOf(st.alliance.Name) {
			return false
		}
	}
	return true
}

func (c *Alliances) levelOf(name string) int {
	if i, ok := c.index[name]; ok {
		return c.states[i].level
	}
	return 0
}
