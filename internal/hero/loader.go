package hero

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/mkreps/underlords/internal/errors"
)

// Document is the on-disk shape of the hero data file: two flat arrays of
// records that reference each other by name.
type Document struct {
	Alliances []AllianceRecord `json:"alliances"`
	Heroes    []HeroRecord     `json:"heroes"`
}

// AllianceRecord is one alliance entry in the data file.
type AllianceRecord struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Total  int    `json:"total"`
	Effect string `json:"effect"`
}

// HeroRecord is one hero entry in the data file. Alliance membership and the
// optional ace marker are carried as alliance names and resolved by Build.
type HeroRecord struct {
	Name        string   `json:"name"`
	Tier        int      `json:"tier"`
	Ace         string   `json:"ace"`
	Alliances   []string `json:"alliances"`
	Abilities   []string `json:"abilities"`
	Description string   `json:"description"`
	Stats       []Stats  `json:"stats"`
}

// Load reads and resolves the hero data file at path. Heroes whose name is in
// excluded (matched case-insensitively) are dropped from the universe before
// any references are resolved.
func Load(path string, excluded []string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading hero data file %s", path)
	}
	return Parse(data, excluded)
}

// Parse decodes a hero data document and resolves it into a Universe.
func Parse(data []byte, excluded []string) (*Universe, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.Join(errors.ErrDataCorrupted, err), "decoding hero data")
	}
	return Build(doc, excluded)
}

// Build validates the records, resolves every alliance-name reference to a
// pointer, populates each alliance's member set, and returns the finished
// Universe.
//
// Validation failures are reported as ValidationError or AlreadyExistsError;
// unresolved references as NotFoundError wrapped with the hero's name.
func Build(doc Document, excluded []string) (*Universe, error) {
	dropped := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		dropped[strings.ToLower(name)] = true
	}

	alliances := make([]*Alliance, 0, len(doc.Alliances))
	byName := make(map[string]*Alliance, len(doc.Alliances))
	for _, rec := range doc.Alliances {
		if err := validateAllianceRecord(rec); err != nil {
			return nil, err
		}
		if _, ok := byName[rec.Name]; ok {
			return nil, errors.NewAlreadyExistsError("alliance", rec.Name)
		}
		a := &Alliance{
			Name:   rec.Name,
			Level:  rec.Level,
			Total:  rec.Total,
			Effect: rec.Effect,
			Heroes: NewSet(),
		}
		byName[a.Name] = a
		alliances = append(alliances, a)
	}

	heroes := make([]*Hero, 0, len(doc.Heroes))
	seen := make(map[string]bool, len(doc.Heroes))
	for _, rec := range doc.Heroes {
		if dropped[strings.ToLower(rec.Name)] {
			continue
		}
		if err := validateHeroRecord(rec); err != nil {
			return nil, err
		}
		if seen[rec.Name] {
			return nil, errors.NewAlreadyExistsError("hero", rec.Name)
		}
		seen[rec.Name] = true

		h := &Hero{
			Name:        rec.Name,
			Tier:        rec.Tier,
			Abilities:   rec.Abilities,
			Description: rec.Description,
			Stats:       rec.Stats,
		}
		for _, name := range rec.Alliances {
			a, ok := byName[name]
			if !ok {
				return nil, errors.Wrapf(errors.NewNotFoundError("alliance", name), "loading hero %q", rec.Name)
			}
			h.Alliances = append(h.Alliances, a)
			a.Heroes.Add(h)
		}
		if rec.Ace != "" {
			a, ok := byName[rec.Ace]
			if !ok {
				return nil, errors.Wrapf(errors.NewNotFoundError("alliance", rec.Ace), "loading hero %q", rec.Name)
			}
			h.Ace = a
		}
		heroes = append(heroes, h)
	}

	return newUniverse(heroes, alliances), nil
}

func validateAllianceRecord(rec AllianceRecord) error {
	if rec.Name == "" {
		return errors.NewValidationError("alliance name is required").WithField("name")
	}
	if rec.Level < 1 {
		return errors.NewValidationError("alliance level must be a positive integer").
			WithField(rec.Name + ".level").WithValue(rec.Level)
	}
	if rec.Total < rec.Level || rec.Total%rec.Level != 0 {
		return errors.NewValidationError("alliance total must be a positive multiple of its level").
			WithField(rec.Name + ".total").WithValue(rec.Total)
	}
	return nil
}

func validateHeroRecord(rec HeroRecord) error {
	if rec.Name == "" {
		return errors.NewValidationError("hero name is required").WithField("name")
	}
	if rec.Tier < 1 || rec.Tier > 5 {
		return errors.NewValidationError("hero tier must be between 1 and 5").
			WithField(rec.Name + ".tier").WithValue(rec.Tier)
	}
	return nil
}
