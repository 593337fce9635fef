package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Character{
		{ID: "ember-knight", Name: "Ember Knight", Tagline: "Oathsworn blade", Background: "Forged in cinders.", Role: "Vanguard", Difficulty: "Intermediate"},
		{ID: "lyra-vale", Name: "Lyra Vale", Tagline: "The Frostbound Oracle", Background: "Reads the ice.", Role: "Support", Difficulty: "Expert"},
		{ID: "vesper-quill", Name: "Vesper Quill", Tagline: "Night assassin", Background: "Writes in shadow.", Role: "Striker", Difficulty: "Expert"},
		{ID: "bramble-warden", Name: "Bramble Warden", Tagline: "Grove guardian", Background: "Roots invaders.", Role: "Vanguard", Difficulty: "Beginner"},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func ids(characters []catalog.Character) []string {
	out := make([]string, 0, len(characters))
	for _, character := range characters {
		out = append(out, character.ID)
	}
	return out
}

func TestApplyDefaultCriteriaReturnsWholeCatalogInOrder(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	got := Apply(c, DefaultCriteria())
	if diff := cmp.Diff(ids(c.Characters()), ids(got.Characters)); diff != "" {
		t.Fatalf("Apply() mismatch (-want +got):\n%s", diff)
	}
	if got.Empty() {
		t.Fatalf("Empty() = true, want false")
	}
}

func TestApplyBlankSelectionsUseSentinels(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	got := Apply(c, Criteria{Query: "   "})
	if got.Len() != c.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), c.Len())
	}
	if got.Criteria.Role != AllRoles || got.Criteria.Difficulty != AllDifficulties {
		t.Fatalf("Criteria = %+v, want sentinels", got.Criteria)
	}
}

func TestApplyIncludesEveryCharacterUnderItsOwnRole(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	for _, character := range c.Characters() {
		got := Apply(c, Criteria{Role: character.Role, Difficulty: AllDifficulties})
		found := false
		for _, match := range got.Characters {
			if match.ID == character.ID {
				found = true
			}
			if match.Role != character.Role {
				t.Fatalf("role %q result includes %q with role %q", character.Role, match.ID, match.Role)
			}
		}
		if !found {
			t.Fatalf("role %q result is missing %q", character.Role, character.ID)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	criteria := Criteria{Query: "e", Role: "Vanguard", Difficulty: AllDifficulties}
	first := Apply(c, criteria)
	second := Apply(c, criteria)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Apply() not idempotent (-first +second):\n%s", diff)
	}
}

func TestApplyQueryFoldsCaseAcrossTextFields(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "tagline match", query: "frost", want: []string{"lyra-vale"}},
		{name: "upper case query", query: "  FROSTBOUND ", want: []string{"lyra-vale"}},
		{name: "name match", query: "quill", want: []string{"vesper-quill"}},
		{name: "background match", query: "ROOTS", want: []string{"bramble-warden"}},
		{name: "no match", query: "dragon", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Apply(c, Criteria{Query: tc.query})
			if diff := cmp.Diff(tc.want, ids(got.Characters)); diff != "" {
				t.Fatalf("Apply(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestApplyCombinesCriteriaWithAnd(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	got := Apply(c, Criteria{Role: "Vanguard", Difficulty: "Beginner"})
	if diff := cmp.Diff([]string{"bramble-warden"}, ids(got.Characters)); diff != "" {
		t.Fatalf("Apply() mismatch (-want +got):\n%s", diff)
	}

	got = Apply(c, Criteria{Query: "frost", Role: "Vanguard"})
	if !got.Empty() {
		t.Fatalf("Empty() = false, want true for %v", ids(got.Characters))
	}
}

func TestApplyRoleMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	got := Apply(c, Criteria{Role: "vanguard"})
	if !got.Empty() {
		t.Fatalf("Apply(role=vanguard) = %v, want empty", ids(got.Characters))
	}
}

func TestApplyOnSeedCatalogMatchesFrostbound(t *testing.T) {
	t.Parallel()

	c, err := catalog.Seed()
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	got := Apply(c, Criteria{Query: "frost"})
	if diff := cmp.Diff([]string{"lyra-vale"}, ids(got.Characters)); diff != "" {
		t.Fatalf("Apply(frost) mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyNilCatalogIsEmpty(t *testing.T) {
	t.Parallel()

	got := Apply(nil, DefaultCriteria())
	if !got.Empty() {
		t.Fatalf("Empty() = false, want true")
	}
}

func TestCriteriaIsDefault(t *testing.T) {
	t.Parallel()

	if !(Criteria{}).IsDefault() {
		t.Fatalf("zero criteria IsDefault() = false, want true")
	}
	if (Criteria{Query: "x"}).IsDefault() {
		t.Fatalf("query criteria IsDefault() = true, want false")
	}
	if (Criteria{Role: "Support"}).IsDefault() {
		t.Fatalf("role criteria IsDefault() = true, want false")
	}
}

func TestDeriveOptionsUsesFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	got := DeriveOptions(c)
	want := Options{
		Roles:        []string{AllRoles, "Vanguard", "Support", "Striker"},
		Difficulties: []string{AllDifficulties, "Intermediate", "Expert", "Beginner"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DeriveOptions() mismatch (-want +got):\n%s", diff)
	}
	if !got.HasRole("Striker") || got.HasRole("Healer") {
		t.Fatalf("HasRole() mismatch for %v", got.Roles)
	}
	if !got.HasDifficulty(AllDifficulties) {
		t.Fatalf("HasDifficulty(sentinel) = false, want true")
	}
}

func TestDeriveOptionsOnEmptyCatalogKeepsSentinels(t *testing.T) {
	t.Parallel()

	c, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	if diff := cmp.Diff([]string{AllRoles}, RoleOptions(c)); diff != "" {
		t.Fatalf("RoleOptions() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{AllDifficulties}, DifficultyOptions(c)); diff != "" {
		t.Fatalf("DifficultyOptions() mismatch (-want +got):\n%s", diff)
	}
}
