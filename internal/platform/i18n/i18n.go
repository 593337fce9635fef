// Package i18n lists the languages mythic.nexus renders and matches request
// preferences against them.
package i18n

import "golang.org/x/text/language"

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported languages, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag is the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag accepts value only when it names a supported language exactly.
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag.String() == parsed.String() {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the supported language closest to the preferred tags.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[idx]
}
