package team

import (
	"slices"
	"testing"
)

func TestAlliances_ViewDoesNotRegister(t *testing.T) {
	f := buildFixture()
	warrior := f.alliance(t, "Warrior")

	c := NewAlliances()
	st := c.View(warrior)
	if st.Level() != 0 {
		t.Errorf("View level = %d, want 0", st.Level())
	}
	if c.Get(warrior) != nil {
		t.Error("View should not register a state")
	}
	if len(c.States()) != 0 {
		t.Errorf("States() has %d entries, want 0", len(c.States()))
	}

	c.Set(warrior, 2)
	if got := c.Get(warrior); got == nil || got.Level() != 2 {
		t.Fatalf("Get after Set = %v, want level 2", got)
	}
	if got := c.View(warrior); got != c.Get(warrior) {
		t.Error("View of an engaged alliance should return the registered state")
	}
}

func TestAlliances_SetKeepsEngagementOrder(t *testing.T) {
	f := buildFixture()

	c := NewAlliances()
	c.Set(f.alliance(t, "Savage"), 1)
	c.Set(f.alliance(t, "Warrior"), 1)
	c.Set(f.alliance(t, "Savage"), 3)

	var names []string
	for _, st := range c.States() {
		names = append(names, st.Alliance().Name)
	}
	if want := []string{"Savage", "Warrior"}; !slices.Equal(names, want) {
		t.Errorf("engagement order = %v, want %v", names, want)
	}
	if got := c.Get(f.alliance(t, "Savage")).Level(); got != 3 {
		t.Errorf("Savage level = %d, want 3", got)
	}
}

func TestAlliances_SizeChargesOutstanding(t *testing.T) {
	f := buildFixture()
	warrior := f.alliance(t, "Warrior")

	c := NewAlliances()
	c.team.Add(f.hero(t, "Axe"))
	c.mixed.Add(f.hero(t, "Pudge"))
	c.Set(warrior, 2)

	// Claim of 6 with 2 members pooled leaves 4 outstanding.
	if got := c.Size(); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}
	if got := len(c.Pool()); got != 2 {
		t.Errorf("len(Pool()) = %d, want 2", got)
	}
}

func TestAlliances_CopyIsolation(t *testing.T) {
	f := buildFixture()
	warrior := f.alliance(t, "Warrior")
	savage := f.alliance(t, "Savage")

	c := NewAlliances()
	c.Set(warrior, 1)
	c.team.Add(f.hero(t, "Axe"))

	dup := c.Copy()
	dup.Set(warrior, 2)
	dup.Set(savage, 1)
	dup.mixed.Add(f.hero(t, "Tusk"))

	if got := c.Get(warrior).Level(); got != 1 {
		t.Errorf("original Warrior level = %d, want 1", got)
	}
	if c.Get(savage) != nil {
		t.Error("engaging an alliance on the copy leaked into the original")
	}
	if len(c.mixed) != 0 {
		t.Error("mutating the copy's reserved set leaked into the original")
	}
	// Derived views of the copy read the copy's partitions.
	if got := dup.Get(warrior).PoolHeroes().SortedNames(); !slices.Equal(got, []string{"Axe", "Tusk"}) {
		t.Errorf("copy PoolHeroes = %v, want [Axe Tusk]", got)
	}
}

func TestAlliances_Equal(t *testing.T) {
	f := buildFixture()
	warrior := f.alliance(t, "Warrior")
	savage := f.alliance(t, "Savage")

	build := func(mutate func(*Alliances)) *Alliances {
		c := NewAlliances()
		mutate(c)
		return c
	}

	tests := []struct {
		name string
		a, b *Alliances
		want bool
	}{
		{
			"both empty",
			build(func(c *Alliances) {}),
			build(func(c *Alliances) {}),
			true,
		},
		{
			"same claims different order",
			build(func(c *Alliances) { c.Set(warrior, 1); c.Set(savage, 2) }),
			build(func(c *Alliances) { c.Set(savage, 2); c.Set(warrior, 1) }),
			true,
		},
		{
			"zero level equals absent",
			build(func(c *Alliances) { c.Set(warrior, 0) }),
			build(func(c *Alliances) {}),
			true,
		},
		{
			"different level",
			build(func(c *Alliances) { c.Set(warrior, 1) }),
			build(func(c *Alliances) { c.Set(warrior, 2) }),
			false,
		},
		{
			"different partition",
			build(func(c *Alliances) { c.team.Add(f.hero(t, "Axe")) }),
			build(func(c *Alliances) { c.mixed.Add(f.hero(t, "Axe")) }),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllianceState_DerivedQuantities(t *testing.T) {
	f := buildFixture()
	warrior := f.alliance(t, "Warrior")

	c := NewAlliances()
	c.team.Add(f.hero(t, "Axe"))
	c.team.Add(f.hero(t, "Pudge"))
	c.mixed.Add(f.hero(t, "Kunkka"))
	c.Set(warrior, 1)

	st := c.Get(warrior)
	if got := st.ClaimSize(); got != 3 {
		t.Errorf("ClaimSize() = %d, want 3", got)
	}
	if got := st.PoolHeroes().SortedNames(); !slices.Equal(got, []string{"Axe", "Pudge", "Kunkka"}) {
		t.Errorf("PoolHeroes = %v, want [Axe Pudge Kunkka]", got)
	}
	if got := st.TeamSize(); got != 2 {
		t.Errorf("TeamSize() = %d, want 2", got)
	}
	if got := st.MixedSize(); got != 1 {
		t.Errorf("MixedSize() = %d, want 1", got)
	}
	if got := st.OutstandingSize(); got != 0 {
		t.Errorf("OutstandingSize() = %d, want 0", got)
	}
	if got := len(st.OutsideHeroes()); got != 5 {
		t.Errorf("len(OutsideHeroes()) = %d, want 5", got)
	}

	// A two-tier claim wants 6; 3 pooled plus 1 reserved leaves 2 to buy.
	if got := st.LevelUpAmount(2, 1); got != 2 {
		t.Errorf("LevelUpAmount(2, 1) = %d, want 2", got)
	}
	if got := st.LevelUpAmount(1, 0); got != 0 {
		t.Errorf("LevelUpAmount(1, 0) = %d, want 0", got)
	}
	if got := st.LevelUpAmount(1, 5); got != 0 {
		t.Errorf("LevelUpAmount(1, 5) = %d, want 0 (never negative)", got)
	}
}

func TestAllianceState_SizesCapAtClaim(t *testing.T) {
	f := buildFixture()
	savage := f.alliance(t, "Savage")

	c := NewAlliances()
	for _, name := range []string{"Tusk", "Enchantress", "Sand King", "Lycan"} {
		c.team.Add(f.hero(t, name))
	}
	c.Set(savage, 1)

	st := c.Get(savage)
	// Four members pooled against a claim of two: the surplus neither counts
	// toward the claim nor leaves demand outstanding.
	if got := st.PoolSize(); got != 2 {
		t.Errorf("PoolSize() = %d, want 2", got)
	}
	if got := st.TeamSize(); got != 2 {
		t.Errorf("TeamSize() = %d, want 2", got)
	}
	if got := st.OutstandingSize(); got != 0 {
		t.Errorf("OutstandingSize() = %d, want 0", got)
	}
}
