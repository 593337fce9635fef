package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTagAcceptsOnlySupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  language.Tag
		ok    bool
	}{
		{value: "en-US", want: language.AmericanEnglish, ok: true},
		{value: "pt-BR", want: language.BrazilianPortuguese, ok: true},
		{value: "fr-FR", ok: false},
		{value: "not a tag!", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTag(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseTag(%q) = (%v, %v), want (%v, %v)", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags([]language.Tag{language.MustParse("pt")}); got != language.BrazilianPortuguese {
		t.Fatalf("MatchTags(pt) = %v, want %v", got, language.BrazilianPortuguese)
	}
	if got := MatchTags([]language.Tag{language.Japanese}); got != DefaultTag() {
		t.Fatalf("MatchTags(ja) = %v, want %v", got, DefaultTag())
	}
	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want %v", got, DefaultTag())
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.Japanese
	if DefaultTag() != language.AmericanEnglish {
		t.Fatalf("DefaultTag() = %v, want %v", DefaultTag(), language.AmericanEnglish)
	}
}
