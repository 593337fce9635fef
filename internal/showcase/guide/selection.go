// Package guide models a character's strategy-guide accordion: at most one
// guide is open at a time.
package guide

import "github.com/louisbranch/mythic.nexus/internal/showcase/catalog"

// Selection is the accordion state for one character's guides.
type Selection struct {
	titles map[string]struct{}
	active string
	open   bool
}

// NewSelection opens the first guide, or none when guides is empty.
func NewSelection(guides []catalog.GuideEntry) Selection {
	s := newClosed(guides)
	if len(guides) > 0 {
		s.active = guides[0].Title
		s.open = true
	}
	return s
}

// Restore rebuilds a selection carried across requests. When present is false
// the default selection applies; an empty or unknown title means every guide
// is closed.
func Restore(guides []catalog.GuideEntry, title string, present bool) Selection {
	if !present {
		return NewSelection(guides)
	}
	s := newClosed(guides)
	if _, ok := s.titles[title]; ok {
		s.active = title
		s.open = true
	}
	return s
}

func newClosed(guides []catalog.GuideEntry) Selection {
	titles := make(map[string]struct{}, len(guides))
	for _, g := range guides {
		titles[g.Title] = struct{}{}
	}
	return Selection{titles: titles}
}

// Toggle closes title when it is open, otherwise makes it the only open guide.
// Titles the character does not have are ignored.
func (s Selection) Toggle(title string) Selection {
	if _, ok := s.titles[title]; !ok {
		return s
	}
	if s.open && s.active == title {
		s.active = ""
		s.open = false
		return s
	}
	s.active = title
	s.open = true
	return s
}

// Active returns the open guide title.
func (s Selection) Active() (string, bool) {
	return s.active, s.open
}

// IsActive reports whether title is the open guide.
func (s Selection) IsActive(title string) bool {
	return s.open && s.active == title
}
