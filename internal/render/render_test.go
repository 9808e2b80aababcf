package render

import (
	"strings"
	"testing"

	"github.com/mkreps/underlords/internal/hero"
	"github.com/mkreps/underlords/internal/team"
)

// buildFixture loads a small universe with overlapping alliances so every
// partition and position case shows up in rendered output.
func buildFixture(t *testing.T) *hero.Universe {
	t.Helper()
	doc := hero.Document{
		Alliances: []hero.AllianceRecord{
			{Name: "Warrior", Level: 3, Total: 6, Effect: "Warriors gain bonus armour."},
			{Name: "Savage", Level: 2, Total: 4, Effect: "Savage units deal bonus damage."},
			{Name: "Brawny", Level: 2, Total: 4, Effect: "Brawny heroes gain max health."},
		},
		Heroes: []hero.HeroRecord{
			{Name: "Axe", Tier: 1, Alliances: []string{"Warrior", "Brawny"}},
			{Name: "Tusk", Tier: 1, Alliances: []string{"Warrior", "Savage"}},
			{Name: "Pudge", Tier: 2, Alliances: []string{"Warrior"}},
			{Name: "Ursa", Tier: 2, Alliances: []string{"Savage", "Brawny"}},
			{Name: "Magnus", Tier: 3, Ace: "Savage", Alliances: []string{"Savage"}},
		},
	}
	u, err := hero.Build(doc, nil)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return u
}

func alliance(t *testing.T, u *hero.Universe, name string) *hero.Alliance {
	t.Helper()
	a, err := u.Alliance(name)
	if err != nil {
		t.Fatalf("Alliance(%q) failed: %v", name, err)
	}
	return a
}

func heroByName(t *testing.T, u *hero.Universe, name string) *hero.Hero {
	t.Helper()
	h, err := u.Hero(name)
	if err != nil {
		t.Fatalf("Hero(%q) failed: %v", name, err)
	}
	return h
}

// warriorTeam builds a roster whose convergence pass pulls all three
// warriors into the team partition.
func warriorTeam(t *testing.T, u *hero.Universe) *team.Team {
	t.Helper()
	tm := team.NewTeam()
	for _, name := range []string{"Axe", "Tusk"} {
		if err := tm.AddHero(heroByName(t, u, name)); err != nil {
			t.Fatalf("AddHero(%s) failed: %v", name, err)
		}
	}
	if err := tm.Add(alliance(t, u, "Warrior"), 1); err != nil {
		t.Fatalf("Add(Warrior, 1) failed: %v", err)
	}
	return tm
}

// savageTeam builds a roster with a claim but no recruited heroes, so the
// whole cost is outstanding.
func savageTeam(t *testing.T, u *hero.Universe) *team.Team {
	t.Helper()
	tm := team.NewTeam()
	if err := tm.Add(alliance(t, u, "Savage"), 1); err != nil {
		t.Fatalf("Add(Savage, 1) failed: %v", err)
	}
	return tm
}

// richTeam extends warriorTeam with Ursa, which engages Brawny and Savage
// through level recomputation.
func richTeam(t *testing.T, u *hero.Universe) *team.Team {
	t.Helper()
	tm := warriorTeam(t, u)
	if err := tm.AddHero(heroByName(t, u, "Ursa")); err != nil {
		t.Fatalf("AddHero(Ursa) failed: %v", err)
	}
	return tm
}

func TestHeroNames(t *testing.T) {
	u := buildFixture(t)

	t.Run("sorted by tier then name", func(t *testing.T) {
		s := hero.NewSet(
			heroByName(t, u, "Ursa"),
			heroByName(t, u, "Tusk"),
			heroByName(t, u, "Axe"),
		)
		got := HeroNames(s)
		want := "Axe(1), Tusk(1), Ursa(2)"
		if got != want {
			t.Errorf("HeroNames() = %q, want %q", got, want)
		}
	})

	t.Run("empty set", func(t *testing.T) {
		if got := HeroNames(hero.NewSet()); got != "" {
			t.Errorf("HeroNames(empty) = %q, want empty string", got)
		}
	})
}

func TestThresholds(t *testing.T) {
	u := buildFixture(t)

	tests := []struct {
		name     string
		alliance *hero.Alliance
		want     string
	}{
		{"two tiers", alliance(t, u, "Warrior"), "3/6"},
		{"two small tiers", alliance(t, u, "Savage"), "2/4"},
		{"single tier", &hero.Alliance{Level: 3, Total: 3}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Thresholds(tt.alliance); got != tt.want {
				t.Errorf("Thresholds() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAllianceCard(t *testing.T) {
	u := buildFixture(t)

	got := AllianceCard(alliance(t, u, "Savage"))
	want := strings.Join([]string{
		"Savage (2/4)",
		"  Savage units deal bonus damage.",
		"  Heroes:",
		"    Tusk(1)",
		"    Ursa(2)",
		"    Magnus(3)",
	}, "\n")

	if got != want {
		t.Errorf("AllianceCard() = %q, want %q", got, want)
	}
}

func TestHeroCard(t *testing.T) {
	u := buildFixture(t)

	t.Run("alliances in declared order", func(t *testing.T) {
		got := HeroCard(heroByName(t, u, "Axe"))
		want := strings.Join([]string{
			"Axe(1)",
			"  Alliances:",
			"    Warrior (3/6)",
			"    Brawny (2/4)",
		}, "\n")
		if got != want {
			t.Errorf("HeroCard() = %q, want %q", got, want)
		}
	})

	t.Run("ace marker", func(t *testing.T) {
		got := HeroCard(heroByName(t, u, "Magnus"))
		want := strings.Join([]string{
			"Magnus(3)",
			"  Alliances:",
			"  * Savage (2/4)",
		}, "\n")
		if got != want {
			t.Errorf("HeroCard() = %q, want %q", got, want)
		}
	})
}
