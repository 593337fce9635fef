package showcase

import (
	"net/url"

	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/mythic.nexus/internal/services/web/templates"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/showcase/filter"
	"github.com/louisbranch/mythic.nexus/internal/showcase/guide"
)

// viewBuilder maps showcase state onto template views. page is the full-page
// path every link falls back to without HTMX.
type viewBuilder struct {
	showcase *showcase.Showcase
	state    pageState
	page     string
	// form overrides the expanded card's submission form after a rejection.
	form *webtemplates.FanArtForm
}

func newViewBuilder(sc *showcase.Showcase, state pageState, page string) viewBuilder {
	if page == "" {
		page = routepath.Root
	}
	return viewBuilder{showcase: sc, state: state, page: page}
}

func (b viewBuilder) onIndex() bool {
	return b.page == routepath.Root
}

func (b viewBuilder) pageURL(state pageState, anchor string) string {
	return routepath.WithQuery(b.page, state.values(), anchor)
}

func (b viewBuilder) filterView() webtemplates.FilterView {
	options := b.showcase.Options()
	criteria := b.state.criteria.Normalize()
	return webtemplates.FilterView{
		Action:       routepath.Root,
		Query:        criteria.Query,
		Role:         criteria.Role,
		Difficulty:   criteria.Difficulty,
		Roles:        options.Roles,
		Difficulties: options.Difficulties,
		ResetURL:     routepath.Root,
	}
}

func (b viewBuilder) resultsView(result filter.Result) webtemplates.ResultsView {
	cards := make([]webtemplates.CardView, 0, result.Len())
	for _, character := range result.Characters {
		cards = append(cards, b.cardView(character))
	}
	return webtemplates.ResultsView{
		Total:    b.showcase.Catalog().Len(),
		Cards:    cards,
		ResetURL: routepath.Root,
	}
}

func (b viewBuilder) cardView(character catalog.Character) webtemplates.CardView {
	expanded := b.state.isExpanded(character.ID)
	next := b.state.toggleExpanded(character.ID)
	toggle := webtemplates.LinkView{
		Href:   b.pageURL(next, webtemplates.CardID(character.ID)),
		HXGet:  b.pageURL(next, ""),
		Target: webtemplates.Target(webtemplates.ResultsID),
	}
	if !b.onIndex() {
		toggle.Href = b.pageURL(next, "")
		toggle.Target = webtemplates.Target(webtemplates.CardID(character.ID))
	}
	view := webtemplates.CardView{
		Character: character,
		Expanded:  expanded,
		Toggle:    toggle,
	}
	if expanded {
		view.Guides = b.guidesView(character)
		view.Gallery = b.galleryView(character)
	}
	return view
}

func (b viewBuilder) selection(character catalog.Character) guide.Selection {
	return guide.Restore(character.Guides, b.state.guide, b.state.guideSet)
}

func (b viewBuilder) guidesView(character catalog.Character) webtemplates.GuidesView {
	selection := b.selection(character)
	items := make([]webtemplates.GuideItemView, 0, len(character.Guides))
	for _, entry := range character.Guides {
		toggled := selection.Toggle(entry.Title)
		title, open := toggled.Active()
		fragment := b.fragmentValues(b.state)
		fragment.Set(routepath.QueryKeyToggle, entry.Title)
		items = append(items, webtemplates.GuideItemView{
			Guide:  entry,
			Active: selection.IsActive(entry.Title),
			Toggle: webtemplates.LinkView{
				Href:   b.pageURL(b.state.withGuide(title, open), webtemplates.GuidesID(character.ID)),
				HXGet:  routepath.WithQuery(routepath.CharacterGuides(character.ID), fragment, ""),
				Target: webtemplates.Target(webtemplates.GuidesID(character.ID)),
			},
		})
	}
	return webtemplates.GuidesView{CharacterID: character.ID, Items: items}
}

func (b viewBuilder) galleryView(character catalog.Character) webtemplates.GalleryView {
	open := b.state.submit
	next := b.state.withSubmit(!open)
	view := webtemplates.GalleryView{
		CharacterID:   character.ID,
		CharacterName: character.Name,
		Entries:       b.showcase.FanArt(character.ID),
		FormOpen:      open,
		FormToggle: webtemplates.LinkView{
			Href:   b.pageURL(next, webtemplates.GalleryID(character.ID)),
			HXGet:  routepath.WithQuery(routepath.CharacterFanArt(character.ID), b.fragmentValues(next), ""),
			Target: webtemplates.Target(webtemplates.GalleryID(character.ID)),
		},
		FormAction: routepath.WithQuery(routepath.CharacterFanArt(character.ID), b.fragmentValues(b.state.withSubmit(true)), ""),
	}
	if b.form != nil {
		view.FormOpen = true
		view.Form = *b.form
	}
	return view
}

// fragmentValues encodes state for fragment routes, which need to know the
// page their links return to.
func (b viewBuilder) fragmentValues(state pageState) url.Values {
	values := state.values()
	if !b.onIndex() {
		values.Set(routepath.QueryKeyView, routepath.ViewCard)
	}
	return values
}
