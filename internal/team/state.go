package team

import (
	"github.com/mkreps/underlords/internal/hero"
)

// AllianceState is one alliance's claim inside an Alliances container. It
// stores only the alliance reference and the claimed synergy level; every
// other quantity is derived on demand from the container's current team and
// mixed sets, so a state never goes stale while the roster changes around it.
//
// States obtained from Alliances.View are transient: they read the live
// container but are not registered in it. States obtained from Get or States
// are the registered ones.
type AllianceState struct {
	alliance *hero.Alliance
	level    int
	owner    *Alliances
}

// Alliance returns the alliance this state tracks.
func (s *AllianceState) Alliance() *hero.Alliance { return s.alliance }

// Level returns the claimed synergy level, 0 when nothing is claimed.
func (s *AllianceState) Level() int { return s.level }

// ClaimSize returns the hero count the claimed level stands for, claimed
// level times the alliance's member step.
func (s *AllianceState) ClaimSize() int {
	return s.alliance.Level * s.level
}

// PoolHeroes returns the alliance members already on the roster, confirmed
// or not.
func (s *AllianceState) PoolHeroes() hero.Set {
	out := make(hero.Set)
	for _, h := range s.alliance.Heroes {
		if s.owner.team.Contains(h) || s.owner.mixed.Contains(h) {
			out.Add(h)
		}
	}
	return out
}

// TeamHeroes returns the alliance members in the confirmed partition.
func (s *AllianceState) TeamHeroes() hero.Set {
	return s.alliance.Heroes.Intersect(s.owner.team)
}

// MixedHeroes returns the alliance members in the reserved partition.
func (s *AllianceState) MixedHeroes() hero.Set {
	return s.alliance.Heroes.Intersect(s.owner.mixed)
}

// OutsideHeroes returns the alliance members not on the roster at all, the
// candidates that could still be recruited toward the claim.
func (s *AllianceState) OutsideHeroes() hero.Set {
	out := make(hero.Set)
	for _, h := range s.alliance.Heroes {
		if !s.owner.team.Contains(h) && !s.owner.mixed.Contains(h) {
			out.Add(h)
		}
	}
	return out
}

// PoolSize returns how many roster heroes count toward the claim, capped at
// the claim size. Members beyond the claim occupy roster slots but do not
// advance this alliance.
func (s *AllianceState) PoolSize() int {
	return min(s.ClaimSize(), len(s.PoolHeroes()))
}

// TeamSize returns how many confirmed heroes count toward the claim, capped
// at the claim size.
func (s *AllianceState) TeamSize() int {
	return min(s.ClaimSize(), len(s.TeamHeroes()))
}

// MixedSize returns the claim's share of the reserved partition.
func (s *AllianceState) MixedSize() int {
	return s.PoolSize() - s.TeamSize()
}

// OutstandingSize returns how many heroes the claim still demands beyond the
// roster. Outstanding demand is charged to the roster cost because those
// slots must eventually be filled.
func (s *AllianceState) OutstandingSize() int {
	return s.ClaimSize() - s.PoolSize()
}

// LevelUpAmount returns how many new roster slots claiming the given level
// would cost, after crediting members already on the roster and the reserved
// overlap slots.
func (s *AllianceState) LevelUpAmount(level, reserved int) int {
	return max(0, level*s.alliance.Level-len(s.PoolHeroes())-reserved)
}

func (s *AllianceState) copy(owner *Alliances) *AllianceState {
	return &AllianceState{alliance: s.alliance, level: s.level, owner: owner}
}
