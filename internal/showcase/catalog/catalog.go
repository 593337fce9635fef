// Package catalog holds the read-only character roster rendered by the showcase.
//
// A Catalog is built once at process start and never mutated afterwards. Callers
// receive copies of the backing slice so no consumer can reorder or replace
// entries under another.
package catalog

import (
	"fmt"
	"strings"
)

// Ability is one named ability in a character kit.
type Ability struct {
	Type        string `yaml:"type" json:"type"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// GuideEntry is one strategy guide. Titles are unique within a character.
type GuideEntry struct {
	Title   string   `yaml:"title" json:"title"`
	Summary string   `yaml:"summary" json:"summary"`
	Steps   []string `yaml:"steps" json:"steps"`
}

// FanArt is one community artwork reference.
type FanArt struct {
	ID       string `yaml:"id" json:"id"`
	Artist   string `yaml:"artist" json:"artist"`
	ImageURL string `yaml:"imageUrl" json:"image_url"`
	Caption  string `yaml:"caption" json:"caption"`
}

// Character is one roster entry.
type Character struct {
	ID         string       `yaml:"id" json:"id"`
	Name       string       `yaml:"name" json:"name"`
	Tagline    string       `yaml:"tagline" json:"tagline"`
	Background string       `yaml:"background" json:"background"`
	ImageURL   string       `yaml:"imageUrl" json:"image_url"`
	Role       string       `yaml:"role" json:"role"`
	Difficulty string       `yaml:"difficulty" json:"difficulty"`
	Faction    string       `yaml:"faction" json:"faction"`
	Abilities  []Ability    `yaml:"abilities" json:"abilities"`
	Strengths  []string     `yaml:"strengths" json:"strengths"`
	Guides     []GuideEntry `yaml:"guides" json:"guides"`
	// FanArt is the initial seed only; live galleries are owned by fanart.Store.
	FanArt []FanArt `yaml:"fanArt" json:"fan_art"`
}

// Catalog is an immutable, ordered character roster.
type Catalog struct {
	characters []Character
	index      map[string]int
}

// New validates characters and builds a Catalog preserving their order.
func New(characters []Character) (*Catalog, error) {
	c := &Catalog{
		characters: make([]Character, 0, len(characters)),
		index:      make(map[string]int, len(characters)),
	}
	for i, character := range characters {
		id := strings.TrimSpace(character.ID)
		if id == "" {
			return nil, fmt.Errorf("character %d: id is required", i)
		}
		if id != character.ID {
			return nil, fmt.Errorf("character %q: id must not carry surrounding whitespace", character.ID)
		}
		if _, exists := c.index[id]; exists {
			return nil, fmt.Errorf("character %q: duplicate id", id)
		}
		if err := validateGuides(character); err != nil {
			return nil, err
		}
		if err := validateFanArt(character); err != nil {
			return nil, err
		}
		c.index[id] = len(c.characters)
		c.characters = append(c.characters, character)
	}
	return c, nil
}

func validateGuides(character Character) error {
	seen := make(map[string]struct{}, len(character.Guides))
	for _, entry := range character.Guides {
		if strings.TrimSpace(entry.Title) == "" {
			return fmt.Errorf("character %q: guide title is required", character.ID)
		}
		if _, exists := seen[entry.Title]; exists {
			return fmt.Errorf("character %q: duplicate guide title %q", character.ID, entry.Title)
		}
		seen[entry.Title] = struct{}{}
	}
	return nil
}

func validateFanArt(character Character) error {
	seen := make(map[string]struct{}, len(character.FanArt))
	for _, art := range character.FanArt {
		if strings.TrimSpace(art.ID) == "" {
			return fmt.Errorf("character %q: fan art id is required", character.ID)
		}
		if _, exists := seen[art.ID]; exists {
			return fmt.Errorf("character %q: duplicate fan art id %q", character.ID, art.ID)
		}
		seen[art.ID] = struct{}{}
	}
	return nil
}

// Len returns the number of characters.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.characters)
}

// Characters returns the roster in catalog order.
func (c *Catalog) Characters() []Character {
	if c == nil {
		return []Character{}
	}
	out := make([]Character, len(c.characters))
	copy(out, c.characters)
	return out
}

// Each calls fn for every character in catalog order without copying the roster.
func (c *Catalog) Each(fn func(Character)) {
	if c == nil || fn == nil {
		return
	}
	for _, character := range c.characters {
		fn(character)
	}
}

// Lookup returns the character with id.
func (c *Catalog) Lookup(id string) (Character, bool) {
	if c == nil {
		return Character{}, false
	}
	idx, ok := c.index[id]
	if !ok {
		return Character{}, false
	}
	return c.characters[idx], true
}
