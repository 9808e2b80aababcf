package team

import (
	"testing"

	"github.com/mkreps/underlords/internal/hero"
)

// fixture is a small fixed arena shared by the engine tests. Membership is
// wired both ways, the way the loader leaves it.
//
// Warrior and Scrappy have fewer members than their top tier needs, so top
// claims on them are unsatisfiable. Scaled and Primordial share all four of
// their members, which makes overlap credits collide with the real cost.
type fixture struct {
	alliances map[string]*hero.Alliance
	heroes    map[string]*hero.Hero
	universe  []*hero.Alliance
}

func buildFixture() *fixture {
	f := &fixture{
		alliances: make(map[string]*hero.Alliance),
		heroes:    make(map[string]*hero.Hero),
	}
	for _, a := range []struct {
		name         string
		level, total int
	}{
		{"Warrior", 3, 9},
		{"Savage", 2, 6},
		{"Brawny", 2, 4},
		{"Hunter", 3, 6},
		{"Scrappy", 3, 6},
		{"Scaled", 2, 4},
		{"Primordial", 2, 4},
	} {
		al := &hero.Alliance{Name: a.name, Level: a.level, Total: a.total, Heroes: make(hero.Set)}
		f.alliances[a.name] = al
		f.universe = append(f.universe, al)
	}
	for _, h := range []struct {
		name      string
		tier      int
		alliances []string
	}{
		{"Axe", 1, []string{"Warrior", "Brawny"}},
		{"Tusk", 1, []string{"Warrior", "Savage"}},
		{"Pudge", 2, []string{"Warrior"}},
		{"Kunkka", 3, []string{"Warrior"}},
		{"Sven", 3, []string{"Warrior"}},
		{"Doom", 4, []string{"Warrior"}},
		{"Dragon Knight", 4, []string{"Warrior"}},
		{"Troll Warlord", 5, []string{"Warrior"}},
		{"Enchantress", 1, []string{"Savage"}},
		{"Sand King", 2, []string{"Savage"}},
		{"Lycan", 3, []string{"Savage"}},
		{"Magnus", 3, []string{"Savage", "Brawny"}},
		{"Lone Druid", 4, []string{"Savage"}},
		{"Bristleback", 2, []string{"Brawny"}},
		{"Ursa", 3, []string{"Brawny"}},
		{"Drow Ranger", 1, []string{"Hunter"}},
		{"Beastmaster", 2, []string{"Hunter"}},
		{"Windranger", 2, []string{"Hunter"}},
		{"Mirana", 3, []string{"Hunter"}},
		{"Sniper", 3, []string{"Hunter"}},
		{"Hoodwink", 4, []string{"Hunter"}},
		{"Clockwerk", 1, []string{"Scrappy"}},
		{"Timbersaw", 2, []string{"Scrappy"}},
		{"Tinker", 4, []string{"Scrappy"}},
		{"Techies", 5, []string{"Scrappy"}},
		{"Slardar", 2, []string{"Scaled", "Primordial"}},
		{"Morphling", 3, []string{"Scaled", "Primordial"}},
		{"Tidehunter", 4, []string{"Scaled", "Primordial"}},
		{"Medusa", 4, []string{"Scaled", "Primordial"}},
	} {
		member := &hero.Hero{Name: h.name, Tier: h.tier}
		for _, name := range h.alliances {
			al := f.alliances[name]
			member.Alliances = append(member.Alliances, al)
			al.Heroes.Add(member)
		}
		f.heroes[h.name] = member
	}
	return f
}

func (f *fixture) alliance(t *testing.T, name string) *hero.Alliance {
	t.Helper()
	al, ok := f.alliances[name]
	if !ok {
		t.Fatalf("fixture has no alliance %q", name)
	}
	return al
}

func (f *fixture) hero(t *testing.T, name string) *hero.Hero {
	t.Helper()
	h, ok := f.heroes[name]
	if !ok {
		t.Fatalf("fixture has no hero %q", name)
	}
	return h
}

func mustAdd(t *testing.T, tm *Team, a *hero.Alliance, level int) {
	t.Helper()
	if err := tm.Add(a, level); err != nil {
		t.Fatalf("Add(%s, %d) unexpected error: %v", a.Name, level, err)
	}
}

func mustAddHero(t *testing.T, tm *Team, h *hero.Hero) {
	t.Helper()
	if err := tm.AddHero(h); err != nil {
		t.Fatalf("AddHero(%s) unexpected error: %v", h.Name, err)
	}
}

func levelOf(tm *Team, a *hero.Alliance) int {
	if st := tm.Alliances().Get(a); st != nil {
		return st.Level()
	}
	return 0
}

// assertUnchanged fails the test when tm no longer equals the snapshot taken
// before a mutation that was supposed to roll back.
func assertUnchanged(t *testing.T, tm, snapshot *Team) {
	t.Helper()
	if !tm.Equal(snapshot) {
		t.Errorf("team changed across a failed mutation:\n  size %d (want %d), live size %d (want %d)",
			tm.Size(), snapshot.Size(), tm.Alliances().Size(), snapshot.Alliances().Size())
	}
}

// assertInvariants checks the structural guarantees that must hold after any
// successful mutation: disjoint partitions, roster within the limit, and
// every pooled hero accounted for by an engaged alliance or a direct add.
func assertInvariants(t *testing.T, tm *Team, direct hero.Set) {
	t.Helper()
	al := tm.Alliances()
	for _, h := range al.TeamHeroes() {
		if al.MixedHeroes().Contains(h) {
			t.Errorf("hero %s is in both team and mixed", h.Name)
		}
	}
	if got := al.Size(); got > tm.Limit() {
		t.Errorf("Alliances.Size() = %d, want <= limit %d", got, tm.Limit())
	}
	for _, h := range al.Pool() {
		if direct != nil && direct.Contains(h) {
			continue
		}
		engaged := false
		for _, st := range al.States() {
			if st.Alliance().Heroes.Contains(h) {
				engaged = true
				break
			}
		}
		if !engaged {
			t.Errorf("pooled hero %s belongs to no engaged alliance and was not directly added", h.Name)
		}
	}
}
