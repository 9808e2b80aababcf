package hero

// Stats holds a hero's combat numbers for one star level. The values come
// straight from the data file and are opaque to the team engine.
type Stats struct {
	Health      int     `json:"health"`
	Mana        int     `json:"mana"`
	DPS         int     `json:"dps"`
	Damage      [2]int  `json:"damage"`
	AttackRate  float64 `json:"attack_rate"`
	MoveSpeed   int     `json:"move_speed"`
	AttackRange int     `json:"attack_range"`
	MagicResist int     `json:"magic_resist"`
	Armour      int     `json:"armour"`
	HealthRegen int     `json:"health_regen"`
}

// Hero is a single recruitable unit. Instances are created by the loader and
// immutable afterwards.
type Hero struct {
	// Name uniquely identifies the hero within its Universe.
	Name string

	// Tier is the hero's shop cost rank, 1 (cheap) through 5 (expensive).
	Tier int

	// Ace points to the alliance this hero is the ace of, or nil. An ace
	// grants its alliance a bonus relationship; the engine treats it as
	// opaque metadata.
	Ace *Alliance

	// Alliances lists the hero's factions in declared order.
	Alliances []*Alliance

	// Abilities, Description and Stats are opaque card data.
	Abilities   []string
	Description string
	Stats       []Stats
}

// MemberOf reports whether the hero belongs to the given alliance.
func (h *Hero) MemberOf(a *Alliance) bool {
	for _, al := range h.Alliances {
		if al.Name == a.Name {
			return true
		}
	}
	return false
}
