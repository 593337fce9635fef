package showcase

import (
	"net/url"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
	"github.com/louisbranch/mythic.nexus/internal/showcase/filter"
)

// pageState is everything a page view carries in its query string. Guide and
// form state only exist for the expanded card.
type pageState struct {
	criteria filter.Criteria
	expanded string
	guide    string
	guideSet bool
	submit   bool
}

func parseState(values url.Values) pageState {
	state := pageState{
		criteria: filter.Criteria{
			Query:      values.Get(routepath.QueryKeySearch),
			Role:       strings.TrimSpace(values.Get(routepath.QueryKeyRole)),
			Difficulty: strings.TrimSpace(values.Get(routepath.QueryKeyDifficulty)),
		}.Normalize(),
		expanded: strings.TrimSpace(values.Get(routepath.QueryKeyExpanded)),
	}
	if state.expanded == "" {
		return state
	}
	if values.Has(routepath.QueryKeyGuide) {
		state.guide = values.Get(routepath.QueryKeyGuide)
		state.guideSet = true
	}
	state.submit = values.Get(routepath.QueryKeySubmit) == "1"
	return state
}

func (s pageState) values() url.Values {
	values := url.Values{}
	if q := strings.TrimSpace(s.criteria.Query); q != "" {
		values.Set(routepath.QueryKeySearch, s.criteria.Query)
	}
	criteria := s.criteria.Normalize()
	if criteria.Role != filter.AllRoles {
		values.Set(routepath.QueryKeyRole, criteria.Role)
	}
	if criteria.Difficulty != filter.AllDifficulties {
		values.Set(routepath.QueryKeyDifficulty, criteria.Difficulty)
	}
	if s.expanded == "" {
		return values
	}
	values.Set(routepath.QueryKeyExpanded, s.expanded)
	if s.guideSet {
		values.Set(routepath.QueryKeyGuide, s.guide)
	}
	if s.submit {
		values.Set(routepath.QueryKeySubmit, "1")
	}
	return values
}

func (s pageState) isExpanded(characterID string) bool {
	return s.expanded != "" && s.expanded == characterID
}

// toggleExpanded collapses characterID when it is the expanded card, otherwise
// expands it with a fresh guide and form state.
func (s pageState) toggleExpanded(characterID string) pageState {
	if s.isExpanded(characterID) {
		characterID = ""
	}
	s.expanded = characterID
	s.guide = ""
	s.guideSet = false
	s.submit = false
	return s
}

func (s pageState) withGuide(title string, open bool) pageState {
	if !open {
		title = ""
	}
	s.guide = title
	s.guideSet = true
	return s
}

func (s pageState) withSubmit(open bool) pageState {
	s.submit = open
	return s
}

// focus expands characterID, keeping guide and form state when it already was.
func (s pageState) focus(characterID string) pageState {
	if s.isExpanded(characterID) {
		return s
	}
	return s.toggleExpanded(characterID)
}
