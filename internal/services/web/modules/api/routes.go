package api

import (
	"net/http"

	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APICharacters, h.handleListCharacters)
	mux.HandleFunc(http.MethodGet+" "+routepath.APICharacterPattern, h.handleGetCharacter)
	mux.HandleFunc(http.MethodGet+" "+routepath.APICharacterFanArtPattern, h.handleListFanArt)
	mux.HandleFunc(http.MethodPost+" "+routepath.APICharacterFanArtPattern, h.handleSubmitFanArt)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIFilterOptions, h.handleFilterOptions)
	mux.HandleFunc(routepath.APIPrefix, h.handleNotFound)
}
