package hero

// Alliance is a faction that grants a synergy bonus once enough of its member
// heroes are on a team. Instances are created by the loader; only the Heroes
// member set is filled in afterwards, and it is fixed once loading completes.
type Alliance struct {
	// Name uniquely identifies the alliance within its Universe.
	Name string

	// Level is the hero-count step between synergy tiers. A Warrior
	// alliance with Level 3 activates at 3, 6 and 9 members.
	Level int

	// Total is the member count of the highest tier. It is always a
	// positive multiple of Level.
	Total int

	// Effect describes the synergy bonus. Opaque to the engine.
	Effect string

	// Heroes is the alliance's member set, populated during load.
	Heroes Set
}

// Sizes returns the ascending member-count thresholds at which a new synergy
// tier activates: Level, 2·Level, … Total.
func (a *Alliance) Sizes() []int {
	sizes := make([]int, 0, a.MaxTier())
	for n := a.Level; n <= a.Total; n += a.Level {
		sizes = append(sizes, n)
	}
	return sizes
}

// MaxTier returns the highest claimable synergy tier, Total/Level.
func (a *Alliance) MaxTier() int {
	return a.Total / a.Level
}
