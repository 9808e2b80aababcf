package hero

import (
	"github.com/mkreps/underlords/internal/errors"
)

// Universe is the owning registry for one loaded data set. It keeps heroes
// and alliances in file order, indexes them by name, and precomputes the
// pairwise member overlap the team engine's reservation step asks about.
//
// A Universe is immutable after Build returns and safe for concurrent reads.
type Universe struct {
	heroes    []*Hero
	alliances []*Alliance

	heroByName     map[string]*Hero
	allianceByName map[string]*Alliance

	// overlap maps an ordered alliance-name pair to the shared member set.
	overlap map[pairKey]Set
}

type pairKey struct {
	a, b string
}

// newUniverse indexes the given entities. Callers guarantee name uniqueness.
func newUniverse(heroes []*Hero, alliances []*Alliance) *Universe {
	u := &Universe{
		heroes:         heroes,
		alliances:      alliances,
		heroByName:     make(map[string]*Hero, len(heroes)),
		allianceByName: make(map[string]*Alliance, len(alliances)),
		overlap:        make(map[pairKey]Set, len(alliances)*len(alliances)),
	}
	for _, h := range heroes {
		u.heroByName[h.Name] = h
	}
	for _, a := range alliances {
		u.allianceByName[a.Name] = a
	}
	for _, a := range alliances {
		for _, b := range alliances {
			u.overlap[pairKey{a.Name, b.Name}] = a.Heroes.Intersect(b.Heroes)
		}
	}
	return u
}

// Heroes returns every hero in file order. The slice is shared; callers must
// not modify it.
func (u *Universe) Heroes() []*Hero {
	return u.heroes
}

// Alliances returns every alliance in file order. The slice is shared;
// callers must not modify it.
func (u *Universe) Alliances() []*Alliance {
	return u.alliances
}

// Hero looks up a hero by exact name.
func (u *Universe) Hero(name string) (*Hero, error) {
	h, ok := u.heroByName[name]
	if !ok {
		return nil, errors.NewNotFoundError("hero", name)
	}
	return h, nil
}

// Alliance looks up an alliance by exact name.
func (u *Universe) Alliance(name string) (*Alliance, error) {
	a, ok := u.allianceByName[name]
	if !ok {
		return nil, errors.NewNotFoundError("alliance", name)
	}
	return a, nil
}

// Overlap returns the heroes belonging to both alliances. The set is shared
// with the Universe's precomputed table; callers must not modify it.
func (u *Universe) Overlap(a, b *Alliance) Set {
	if s, ok := u.overlap[pairKey{a.Name, b.Name}]; ok {
		return s
	}
	// Alliances from another Universe fall back to a direct intersection.
	return a.Heroes.Intersect(b.Heroes)
}
