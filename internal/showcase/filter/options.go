package filter

import "github.com/louisbranch/mythic.nexus/internal/showcase/catalog"

// Options holds the selectable values for the role and difficulty axes. Each
// list starts with its sentinel followed by distinct catalog values in order of
// first appearance.
type Options struct {
	Roles        []string
	Difficulties []string
}

// DeriveOptions computes both option lists in one pass over c.
func DeriveOptions(c *catalog.Catalog) Options {
	return Options{
		Roles:        RoleOptions(c),
		Difficulties: DifficultyOptions(c),
	}
}

// RoleOptions returns AllRoles followed by the distinct roles of c.
func RoleOptions(c *catalog.Catalog) []string {
	return orderedSet(c, AllRoles, func(character catalog.Character) string { return character.Role })
}

// DifficultyOptions returns AllDifficulties followed by the distinct difficulties of c.
func DifficultyOptions(c *catalog.Catalog) []string {
	return orderedSet(c, AllDifficulties, func(character catalog.Character) string { return character.Difficulty })
}

func orderedSet(c *catalog.Catalog, sentinel string, value func(catalog.Character) string) []string {
	out := []string{sentinel}
	seen := map[string]struct{}{sentinel: {}}
	c.Each(func(character catalog.Character) {
		v := value(character)
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	})
	return out
}

// HasRole reports whether role is one of the selectable roles.
func (o Options) HasRole(role string) bool {
	return contains(o.Roles, role)
}

// HasDifficulty reports whether difficulty is one of the selectable difficulties.
func (o Options) HasDifficulty(difficulty string) bool {
	return contains(o.Difficulties, difficulty)
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
