package hero

import (
	"slices"
	"testing"
)

func testHero(name string, tier int) *Hero {
	return &Hero{Name: name, Tier: tier}
}

func TestSet_AddRemoveContains(t *testing.T) {
	axe := testHero("Axe", 1)
	s := NewSet()

	if s.Contains(axe) {
		t.Error("empty set should not contain Axe")
	}

	s.Add(axe)
	if !s.Contains(axe) {
		t.Error("set should contain Axe after Add")
	}
	if len(s) != 1 {
		t.Errorf("len(s) = %d, want 1", len(s))
	}

	s.Remove(axe)
	if s.Contains(axe) {
		t.Error("set should not contain Axe after Remove")
	}

	// Removing again is a no-op.
	s.Remove(axe)
	if len(s) != 0 {
		t.Errorf("len(s) = %d, want 0", len(s))
	}
}

func TestSet_Operations(t *testing.T) {
	a := testHero("Axe", 1)
	b := testHero("Bristleback", 2)
	c := testHero("Clockwerk", 2)

	tests := []struct {
		name string
		got  Set
		want []string
	}{
		{"union", NewSet(a, b).Union(NewSet(b, c)), []string{"Axe", "Bristleback", "Clockwerk"}},
		{"intersect", NewSet(a, b).Intersect(NewSet(b, c)), []string{"Bristleback"}},
		{"intersect empty", NewSet(a).Intersect(NewSet(c)), []string{}},
		{"diff", NewSet(a, b, c).Diff(NewSet(b)), []string{"Axe", "Clockwerk"}},
		{"diff all", NewSet(a).Diff(NewSet(a)), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.SortedNames()
			if !slices.Equal(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_OperationsDoNotMutate(t *testing.T) {
	a := testHero("Axe", 1)
	b := testHero("Bristleback", 2)
	s := NewSet(a)
	other := NewSet(b)

	_ = s.Union(other)
	_ = s.Intersect(other)
	_ = s.Diff(other)

	if len(s) != 1 || len(other) != 1 {
		t.Errorf("non-mutating operations changed operands: len(s)=%d len(other)=%d", len(s), len(other))
	}
}

func TestSet_MergeSubtract(t *testing.T) {
	a := testHero("Axe", 1)
	b := testHero("Bristleback", 2)
	c := testHero("Clockwerk", 2)

	s := NewSet(a)
	s.Merge(NewSet(b, c))
	if want := []string{"Axe", "Bristleback", "Clockwerk"}; !slices.Equal(s.SortedNames(), want) {
		t.Errorf("after Merge: got %v, want %v", s.SortedNames(), want)
	}

	s.Subtract(NewSet(a, c))
	if want := []string{"Bristleback"}; !slices.Equal(s.SortedNames(), want) {
		t.Errorf("after Subtract: got %v, want %v", s.SortedNames(), want)
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	a := testHero("Axe", 1)
	b := testHero("Bristleback", 2)

	s := NewSet(a)
	dup := s.Clone()
	dup.Add(b)

	if s.Contains(b) {
		t.Error("mutating the clone leaked into the original")
	}
	if !dup.Contains(a) {
		t.Error("clone lost an element of the original")
	}
}

func TestSet_Equal(t *testing.T) {
	a := testHero("Axe", 1)
	b := testHero("Bristleback", 2)

	tests := []struct {
		name string
		x, y Set
		want bool
	}{
		{"both empty", NewSet(), NewSet(), true},
		{"same members", NewSet(a, b), NewSet(b, a), true},
		{"subset", NewSet(a), NewSet(a, b), false},
		{"disjoint", NewSet(a), NewSet(b), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Equal(tt.y); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.y.Equal(tt.x); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_SortedOrdersByTierThenName(t *testing.T) {
	s := NewSet(
		testHero("Tidehunter", 5),
		testHero("Axe", 1),
		testHero("Bristleback", 2),
		testHero("Batrider", 2),
	)

	want := []string{"Axe", "Batrider", "Bristleback", "Tidehunter"}
	if got := s.SortedNames(); !slices.Equal(got, want) {
		t.Errorf("SortedNames() = %v, want %v", got, want)
	}
}
