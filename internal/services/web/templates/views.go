package templates

import (
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
)

// ResultsID is the DOM id of the character list swapped by filter requests.
const ResultsID = "results"

// CardID returns the DOM id of a character card.
func CardID(characterID string) string {
	return "character-" + characterID
}

// GuidesID returns the DOM id of a character's guide accordion.
func GuidesID(characterID string) string {
	return "guides-" + characterID
}

// GalleryID returns the DOM id of a character's fan-art gallery.
func GalleryID(characterID string) string {
	return "fan-art-" + characterID
}

// Target returns the hx-target selector for a DOM id.
func Target(id string) string {
	return "#" + id
}

// LayoutView carries document-level data.
type LayoutView struct {
	Lang        string
	Title       string
	Description string
	Languages   []LanguageLink
	Notice      *Notice
}

// Notice is a one-time message shown above the page content.
type Notice struct {
	Kind    string
	Message string
}

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Tag    string
	URL    string
	Active bool
}

// LinkView is a navigation that degrades to a full page load without HTMX.
type LinkView struct {
	Href   string
	HXGet  string
	Target string
}

// FilterView is the filter bar state.
type FilterView struct {
	Action       string
	Query        string
	Role         string
	Difficulty   string
	Roles        []string
	Difficulties []string
	ResetURL     string
}

// ResultsView is the visible character list.
type ResultsView struct {
	Total    int
	Cards    []CardView
	ResetURL string
}

// CardView is one character card.
type CardView struct {
	Character catalog.Character
	Expanded  bool
	Toggle    LinkView
	Guides    GuidesView
	Gallery   GalleryView
}

// GuidesView is a character's guide accordion.
type GuidesView struct {
	CharacterID string
	Items       []GuideItemView
}

// GuideItemView is one accordion entry.
type GuideItemView struct {
	Guide  catalog.GuideEntry
	Active bool
	Toggle LinkView
}

// GalleryView is a character's fan-art gallery and submission form.
type GalleryView struct {
	CharacterID   string
	CharacterName string
	Entries       []catalog.FanArt
	FormOpen      bool
	FormToggle    LinkView
	FormAction    string
	Form          FanArtForm
}

// SingleColumn reports whether the gallery is too small for a grid.
func (g GalleryView) SingleColumn() bool {
	return len(g.Entries) < 2
}

// FanArtForm holds submitted values and the rejection message key.
type FanArtForm struct {
	Artist   string
	ImageURL string
	Caption  string
	ErrorKey string
}
