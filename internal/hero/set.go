package hero

import (
	"slices"
	"strings"
)

// Set is a collection of heroes keyed by name. The zero value is not usable;
// create sets with NewSet. Sets are not safe for concurrent mutation.
//
// Union, Intersect and Diff return fresh sets; Merge and Subtract mutate the
// receiver. Iteration over the underlying map is unordered; use Sorted or
// SortedNames wherever order can be observed.
type Set map[string]*Hero

// NewSet creates a Set containing the given heroes.
func NewSet(heroes ...*Hero) Set {
	s := make(Set, len(heroes))
	for _, h := range heroes {
		s[h.Name] = h
	}
	return s
}

// Add inserts a hero into the set.
func (s Set) Add(h *Hero) {
	s[h.Name] = h
}

// Remove deletes a hero from the set. Removing an absent hero is a no-op.
func (s Set) Remove(h *Hero) {
	delete(s, h.Name)
}

// Contains reports whether the hero is in the set.
func (s Set) Contains(h *Hero) bool {
	_, ok := s[h.Name]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	dup := make(Set, len(s))
	for name, h := range s {
		dup[name] = h
	}
	return dup
}

// Union returns a new set with every hero in s or other.
func (s Set) Union(other Set) Set {
	dup := make(Set, len(s)+len(other))
	for name, h := range s {
		dup[name] = h
	}
	for name, h := range other {
		dup[name] = h
	}
	return dup
}

// Intersect returns a new set with every hero in both s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(other) < len(s) {
		small, large = other, s
	}
	out := make(Set)
	for name, h := range small {
		if _, ok := large[name]; ok {
			out[name] = h
		}
	}
	return out
}

// Diff returns a new set with every hero in s that is not in other.
func (s Set) Diff(other Set) Set {
	out := make(Set)
	for name, h := range s {
		if _, ok := other[name]; !ok {
			out[name] = h
		}
	}
	return out
}

// Merge adds every hero in other to s.
func (s Set) Merge(other Set) {
	for name, h := range other {
		s[name] = h
	}
}

// Subtract removes every hero in other from s.
func (s Set) Subtract(other Set) {
	for name := range other {
		delete(s, name)
	}
}

// Equal reports whether s and other contain exactly the same hero names.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the set's heroes ordered by (tier, name). This is the
// canonical traversal order for anything user-visible or order-sensitive.
func (s Set) Sorted() []*Hero {
	heroes := make([]*Hero, 0, len(s))
	for _, h := range s {
		heroes = append(heroes, h)
	}
	slices.SortFunc(heroes, func(a, b *Hero) int {
		if a.Tier != b.Tier {
			return a.Tier - b.Tier
		}
		return strings.Compare(a.Name, b.Name)
	})
	return heroes
}

// SortedNames returns the set's hero names in (tier, name) order.
func (s Set) SortedNames() []string {
	heroes := s.Sorted()
	names := make([]string, len(heroes))
	for i, h := range heroes {
		names[i] = h.Name
	}
	return names
}
