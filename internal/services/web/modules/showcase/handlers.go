package showcase

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/mythic.nexus/internal/platform/errors"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/flash"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/pagerender"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/weberror"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/mythic.nexus/internal/services/web/templates"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/showcase/fanart"
)

const (
	noticeKeySubmitted = "showcase.fan_art.notice_submitted"
	errKeyCrossOrigin  = "showcase.error.cross_origin"
)

type handlers struct {
	showcase *showcase.Showcase
}

func newHandlers(sc *showcase.Showcase) handlers {
	return handlers{showcase: sc}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeIndex(w, r, parseState(r.URL.Query()), nil, http.StatusOK)
}

func (h handlers) writeIndex(w http.ResponseWriter, r *http.Request, state pageState, form *webtemplates.FanArtForm, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(r)
	builder := newViewBuilder(h.showcase, state, routepath.Root)
	builder.form = form
	results := builder.resultsView(h.showcase.Search(r.Context(), state.criteria))
	h.writePage(w, r, pagerender.Page{
		StatusCode: statusCode,
		Fragment:   webtemplates.IndexPage(builder.filterView(), results, loc),
		Partial:    webtemplates.Results(results, loc),
	})
}

func (h handlers) handleCharacter(w http.ResponseWriter, r *http.Request) {
	character, ok := h.character(w, r)
	if !ok {
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	state := parseState(r.URL.Query())
	builder := newViewBuilder(h.showcase, state, routepath.Character(character.ID))
	card := builder.cardView(character)
	h.writePage(w, r, pagerender.Page{
		Title:    character.Name + " | " + webtemplates.T(loc, "showcase.page.title"),
		Fragment: webtemplates.CharacterPage(card, loc),
		Partial:  webtemplates.Card(card, loc),
	})
}

func (h handlers) handleGuides(w http.ResponseWriter, r *http.Request) {
	character, ok := h.character(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	state := parseState(query).focus(character.ID)
	builder := newViewBuilder(h.showcase, state, returnPage(character.ID, query))
	if query.Has(routepath.QueryKeyToggle) {
		title, open := builder.selection(character).Toggle(query.Get(routepath.QueryKeyToggle)).Active()
		builder.state = state.withGuide(title, open)
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, builder.pageURL(builder.state, webtemplates.GuidesID(character.ID)))
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	h.writeFragment(w, r, http.StatusOK, webtemplates.Guides(builder.guidesView(character), loc))
}

func (h handlers) handleFanArt(w http.ResponseWriter, r *http.Request) {
	character, ok := h.character(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	builder := newViewBuilder(h.showcase, parseState(query).focus(character.ID), returnPage(character.ID, query))
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, builder.pageURL(builder.state, webtemplates.GalleryID(character.ID)))
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	h.writeFragment(w, r, http.StatusOK, webtemplates.Gallery(builder.galleryView(character), loc))
}

func (h handlers) handleSubmitFanArt(w http.ResponseWriter, r *http.Request) {
	if requestmeta.IsCrossOrigin(r) {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindForbidden, errKeyCrossOrigin, "cross-origin fan art submission"))
		return
	}
	character, ok := h.character(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse fan art form: "+err.Error()))
		return
	}
	query := r.URL.Query()
	state := parseState(query).focus(character.ID)
	page := returnPage(character.ID, query)
	submission := fanart.Submission{
		Artist:   r.PostForm.Get(webtemplates.FormFieldArtist),
		ImageURL: r.PostForm.Get(webtemplates.FormFieldImageURL),
		Caption:  r.PostForm.Get(webtemplates.FormFieldCaption),
	}

	_, err := h.showcase.SubmitFanArt(r.Context(), character.ID, submission)
	if apperrors.IsKind(err, apperrors.KindInvalidInput) {
		h.writeRejectedSubmission(w, r, character, state.withSubmit(true), page, submission, err)
		return
	}
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}

	state = state.withSubmit(false)
	builder := newViewBuilder(h.showcase, state, page)
	if !httpx.IsHTMXRequest(r) {
		flash.Write(w, r, flash.NoticeSuccess(noticeKeySubmitted))
		httpx.WriteRedirect(w, r, builder.pageURL(state, webtemplates.GalleryID(character.ID)))
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	h.writeFragment(w, r, http.StatusOK, webtemplates.Gallery(builder.galleryView(character), loc))
}

// writeRejectedSubmission re-renders the open form with the entered values and
// the rejection message.
func (h handlers) writeRejectedSubmission(w http.ResponseWriter, r *http.Request, character catalog.Character, state pageState, page string, submission fanart.Submission, err error) {
	form := &webtemplates.FanArtForm{
		Artist:   submission.Artist,
		ImageURL: submission.ImageURL,
		Caption:  submission.Caption,
		ErrorKey: apperrors.LocalizationKey(err),
	}
	if form.ErrorKey == "" {
		form.ErrorKey = fanart.ErrKeyImageRequired
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	builder := newViewBuilder(h.showcase, state, page)
	builder.form = form
	switch {
	case httpx.IsHTMXRequest(r):
		h.writeFragment(w, r, http.StatusBadRequest, webtemplates.Gallery(builder.galleryView(character), loc))
	case builder.onIndex():
		h.writeIndex(w, r, state, form, http.StatusBadRequest)
	default:
		card := builder.cardView(character)
		h.writePage(w, r, pagerender.Page{
			Title:      character.Name + " | " + webtemplates.T(loc, "showcase.page.title"),
			StatusCode: http.StatusBadRequest,
			Fragment:   webtemplates.CharacterPage(card, loc),
		})
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// character resolves the path character or writes the not-found page.
func (h handlers) character(w http.ResponseWriter, r *http.Request) (catalog.Character, bool) {
	id := strings.TrimSpace(r.PathValue("characterID"))
	character, ok := h.showcase.Character(id)
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, fanart.ErrKeyUnknownCharacter, "character "+id+" not found"))
		return catalog.Character{}, false
	}
	return character, true
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func (h handlers) writeFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) {
	h.writePage(w, r, pagerender.Page{StatusCode: statusCode, Fragment: fragment})
}

// returnPage picks the page fragment links fall back to.
func returnPage(characterID string, query url.Values) string {
	if query.Get(routepath.QueryKeyView) == routepath.ViewCard {
		return routepath.Character(characterID)
	}
	return routepath.Root
}
