// Package filter computes the visible subset of a catalog for a set of search
// criteria and derives the categorical option lists shown in the filter bar.
package filter

import (
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"golang.org/x/text/cases"
)

const (
	// AllRoles is the role sentinel meaning "no role filter".
	AllRoles = "All Roles"
	// AllDifficulties is the difficulty sentinel meaning "no difficulty filter".
	AllDifficulties = "All Difficulties"
)

// Criteria is the complete filter state: one query, one role, one difficulty.
type Criteria struct {
	Query      string
	Role       string
	Difficulty string
}

// DefaultCriteria returns criteria that match the whole catalog.
func DefaultCriteria() Criteria {
	return Criteria{Role: AllRoles, Difficulty: AllDifficulties}
}

// Normalize fills blank role and difficulty selections with their sentinels.
func (c Criteria) Normalize() Criteria {
	if strings.TrimSpace(c.Role) == "" {
		c.Role = AllRoles
	}
	if strings.TrimSpace(c.Difficulty) == "" {
		c.Difficulty = AllDifficulties
	}
	return c
}

// IsDefault reports whether the criteria apply no filtering.
func (c Criteria) IsDefault() bool {
	n := c.Normalize()
	return strings.TrimSpace(n.Query) == "" && n.Role == AllRoles && n.Difficulty == AllDifficulties
}

// Result is the ordered visible subset of a catalog.
type Result struct {
	Criteria   Criteria
	Characters []catalog.Character
}

// Empty reports that no character matched. Renderers show a dedicated
// no-results state for it rather than an empty list.
func (r Result) Empty() bool {
	return len(r.Characters) == 0
}

// Len returns the number of matching characters.
func (r Result) Len() int {
	return len(r.Characters)
}

// Apply returns the characters of c that satisfy every criterion, in catalog order.
func Apply(c *catalog.Catalog, criteria Criteria) Result {
	criteria = criteria.Normalize()
	m := newMatcher(criteria)
	matched := make([]catalog.Character, 0, c.Len())
	c.Each(func(character catalog.Character) {
		if m.matches(character) {
			matched = append(matched, character)
		}
	})
	return Result{Criteria: criteria, Characters: matched}
}

type matcher struct {
	fold       cases.Caser
	query      string
	role       string
	difficulty string
}

func newMatcher(criteria Criteria) matcher {
	fold := cases.Fold()
	return matcher{
		fold:       fold,
		query:      fold.String(strings.TrimSpace(criteria.Query)),
		role:       criteria.Role,
		difficulty: criteria.Difficulty,
	}
}

func (m matcher) matches(character catalog.Character) bool {
	return m.matchesQuery(character) && m.matchesRole(character) && m.matchesDifficulty(character)
}

func (m matcher) matchesQuery(character catalog.Character) bool {
	if m.query == "" {
		return true
	}
	for _, field := range [...]string{character.Name, character.Tagline, character.Background} {
		if strings.Contains(m.fold.String(field), m.query) {
			return true
		}
	}
	return false
}

func (m matcher) matchesRole(character catalog.Character) bool {
	return m.role == AllRoles || character.Role == m.role
}

func (m matcher) matchesDifficulty(character catalog.Character) bool {
	return m.difficulty == AllDifficulties || character.Difficulty == m.difficulty
}
