package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/mythic.nexus/internal/platform/errors"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/weberror"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/showcase/fanart"
	"github.com/louisbranch/mythic.nexus/internal/showcase/filter"
)

const (
	maxSubmitBodyBytes = 1 << 20
	errKeyCrossOrigin  = "showcase.error.cross_origin"
)

type handlers struct {
	showcase *showcase.Showcase
}

func newHandlers(sc *showcase.Showcase) handlers {
	return handlers{showcase: sc}
}

func (h handlers) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result := h.showcase.Search(r.Context(), filter.Criteria{
		Query:      query.Get(routepath.QueryKeySearch),
		Role:       strings.TrimSpace(query.Get(routepath.QueryKeyRole)),
		Difficulty: strings.TrimSpace(query.Get(routepath.QueryKeyDifficulty)),
	})
	characters := make([]characterPayload, 0, result.Len())
	for _, character := range result.Characters {
		characters = append(characters, h.characterPayload(character))
	}
	h.writeJSON(w, http.StatusOK, characterListPayload{
		Criteria:   newCriteriaPayload(result.Criteria),
		Total:      h.showcase.Catalog().Len(),
		Count:      result.Len(),
		Characters: characters,
	})
}

func (h handlers) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	character, ok := h.character(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.characterPayload(character))
}

func (h handlers) handleListFanArt(w http.ResponseWriter, r *http.Request) {
	character, ok := h.character(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, fanArtListPayload{
		CharacterID: character.ID,
		FanArt:      h.showcase.FanArt(character.ID),
	})
}

func (h handlers) handleSubmitFanArt(w http.ResponseWriter, r *http.Request) {
	if requestmeta.IsCrossOrigin(r) {
		h.writeError(w, r, apperrors.EK(apperrors.KindForbidden, errKeyCrossOrigin, "cross-origin fan art submission"))
		return
	}
	var payload fanArtSubmitPayload
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmitBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		h.writeError(w, r, apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("decode fan art submission: %v", err)))
		return
	}
	entry, err := h.showcase.SubmitFanArt(r.Context(), strings.TrimSpace(r.PathValue("characterID")), fanart.Submission{
		Artist:   payload.Artist,
		ImageURL: payload.ImageURL,
		Caption:  payload.Caption,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, entry)
}

func (h handlers) handleFilterOptions(w http.ResponseWriter, _ *http.Request) {
	options := h.showcase.Options()
	h.writeJSON(w, http.StatusOK, filterOptionsPayload{
		Roles:        options.Roles,
		Difficulties: options.Difficulties,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperrors.E(apperrors.KindNotFound, "no api route for "+r.URL.Path))
}

func (h handlers) character(w http.ResponseWriter, r *http.Request) (catalog.Character, bool) {
	id := strings.TrimSpace(r.PathValue("characterID"))
	character, ok := h.showcase.Character(id)
	if !ok {
		h.writeError(w, r, apperrors.EK(apperrors.KindNotFound, fanart.ErrKeyUnknownCharacter, fmt.Sprintf("character %q not found", id)))
		return catalog.Character{}, false
	}
	return character, true
}

func (h handlers) characterPayload(character catalog.Character) characterPayload {
	return characterPayload{Character: character, FanArt: h.showcase.FanArt(character.ID)}
}

func (h handlers) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	if err := httpx.WriteJSON(w, statusCode, payload); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

// writeError writes a localized JSON error. Internal messages never reach the
// client.
func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	loc, _ := webi18n.ResolveLocalizer(r)
	h.writeJSON(w, apperrors.HTTPStatus(err), errorPayload{
		Error: weberror.PublicMessage(loc, err),
		Code:  string(apperrors.KindOf(err)),
	})
}
