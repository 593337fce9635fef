// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                      = "/"
	Health                    = "/up"
	StaticPrefix              = "/static/"
	CharactersPrefix          = "/characters/"
	CharacterPattern          = CharactersPrefix + "{characterID}"
	CharacterGuidesPattern    = CharactersPrefix + "{characterID}/guides"
	CharacterFanArtPattern    = CharactersPrefix + "{characterID}/fan-art"
	APIPrefix                 = "/api/"
	APICharacters             = "/api/characters"
	APICharactersPrefix       = "/api/characters/"
	APICharacterPattern       = APICharactersPrefix + "{characterID}"
	APICharacterFanArtPattern = APICharactersPrefix + "{characterID}/fan-art"
	APIFilterOptions          = "/api/filter-options"
)

// Query parameter keys shared by page links, fragments and the JSON API.
const (
	QueryKeySearch     = "q"
	QueryKeyRole       = "role"
	QueryKeyDifficulty = "difficulty"
	QueryKeyExpanded   = "expanded"
	QueryKeyGuide      = "guide"
	QueryKeyToggle     = "toggle"
	QueryKeySubmit     = "submit"
	QueryKeyLang       = "lang"
	// QueryKeyView tells fragment routes which page their links return to.
	QueryKeyView = "view"
)

// ViewCard is the QueryKeyView value of the single-character page.
const ViewCard = "card"

// Character returns the character card route.
func Character(characterID string) string {
	return CharactersPrefix + escapeSegment(characterID)
}

// CharacterGuides returns the guide accordion fragment route.
func CharacterGuides(characterID string) string {
	return Character(characterID) + "/guides"
}

// CharacterFanArt returns the fan-art gallery route.
func CharacterFanArt(characterID string) string {
	return Character(characterID) + "/fan-art"
}

// APICharacter returns the JSON character route.
func APICharacter(characterID string) string {
	return APICharactersPrefix + escapeSegment(characterID)
}

// APICharacterFanArt returns the JSON fan-art route.
func APICharacterFanArt(characterID string) string {
	return APICharacter(characterID) + "/fan-art"
}

// WithQuery appends an encoded query and an optional fragment anchor to path.
func WithQuery(path string, values url.Values, anchor string) string {
	out := path
	if encoded := values.Encode(); encoded != "" {
		out += "?" + encoded
	}
	if anchor = strings.TrimSpace(anchor); anchor != "" {
		out += "#" + anchor
	}
	return out
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
