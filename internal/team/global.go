package team

import (
	"iter"

	"github.com/mkreps/underlords/internal/hero"
)

// Global is a Team bound to a fixed alliance universe. Its exploration
// methods draw candidates from the whole universe and default the rule to
// Maximize, which is the full search a planner session runs.
type Global struct {
	*Team
	universe []*hero.Alliance
}

// NewGlobal creates an empty team over the given alliance universe.
func NewGlobal(universe []*hero.Alliance, opts ...Option) *Global {
	return &Global{Team: NewTeam(opts...), universe: universe}
}

// Copy returns an independent team sharing the same universe.
func (g *Global) Copy() *Global {
	return &Global{Team: g.Team.Copy(), universe: g.universe}
}

// Universe returns the alliance list exploration draws candidates from.
func (g *Global) Universe() []*hero.Alliance { return g.universe }

// Increase explores one upgrade step over the universe. A nil rule means
// Maximize.
func (g *Global) Increase(rule Rule, opts ...ExploreOption) iter.Seq[*Team] {
	return g.Team.Increase(g.universe, ruleOrMax(rule), opts...)
}

// RecursiveIncrease explores to the leaves over the universe. A nil rule
// means Maximize.
func (g *Global) RecursiveIncrease(rule Rule, opts ...ExploreOption) iter.Seq[*Team] {
	return g.Team.RecursiveIncrease(g.universe, ruleOrMax(rule), opts...)
}

// ExpandParallel explores to the leaves over the universe with the first
// expansion level fanned out across workers. A nil rule means Maximize.
func (g *Global) ExpandParallel(rule Rule, opts ...ExploreOption) []*Team {
	return g.Team.ExpandParallel(g.universe, ruleOrMax(rule), opts...)
}
