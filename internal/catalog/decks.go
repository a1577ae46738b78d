package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile is the top-level decks.yaml structure, unchanged from the
// teacher's game.DeckFile shape (spec §2 expansion: "Config ... with a
// YAML loader, as the teacher loads decks").
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry is a single named deck within a DeckFile.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry names a catalog definition id and how many copies to include.
type CardEntry struct {
	ID    string `yaml:"id"`
	Count int    `yaml:"count"`
}

// ParseDeckFile reads path and expands every deck entry into a flat
// []string of definition ids (one entry per copy), validated against cat.
func ParseDeckFile(cat *Catalog, path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string][]string, len(df.Decks))
	for _, d := range df.Decks {
		var ids []string
		for _, entry := range d.Cards {
			if _, ok := cat.Lookup(entry.ID); !ok {
				return nil, fmt.Errorf("deck %q references unknown card %q", d.Name, entry.ID)
			}
			for i := 0; i < entry.Count; i++ {
				ids = append(ids, entry.ID)
			}
		}
		decks[d.Name] = ids
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(cat *Catalog, path string, n int) (string, []string, error) {
	decks, err := ParseDeckFile(cat, path)
	if err != nil {
		return "", nil, err
	}

	var df DeckFile
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	if err := yaml.Unmarshal(data, &df); err != nil {
		return "", nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}
	name := df.Decks[n-1].Name
	return name, decks[name], nil
}
