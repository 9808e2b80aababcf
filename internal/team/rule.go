package team

import (
	"github.com/mkreps/underlords/internal/hero"
)

// Rule upgrades one alliance on a team and returns the team it was given.
// Rules mutate in place; exploration always hands them a scratch copy.
type Rule func(*Team, *hero.Alliance) (*Team, error)

// AddLevel returns a rule claiming a fixed synergy level.
func AddLevel(level int) Rule {
	return func(t *Team, a *hero.Alliance) (*Team, error) {
		if err := t.Add(a, level); err != nil {
			return nil, err
		}
		return t, nil
	}
}

// Increment claims one level above the alliance's current claim.
func Increment(t *Team, a *hero.Alliance) (*Team, error) {
	level := 1
	if st := t.Alliances().Get(a); st != nil {
		level = st.Level() + 1
	}
	if err := t.Add(a, level); err != nil {
		return nil, err
	}
	return t, nil
}

// Maximize claims the highest level that fits the roster. It is the default
// exploration rule.
func Maximize(t *Team, a *hero.Alliance) (*Team, error) {
	if err := t.AddMax(a); err != nil {
		return nil, err
	}
	return t, nil
}

func ruleOrMax(rule Rule) Rule {
	if rule == nil {
		return Maximize
	}
	return rule
}
