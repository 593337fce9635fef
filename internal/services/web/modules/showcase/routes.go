package showcase

import (
	"net/http"

	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CharacterPattern, h.handleCharacter)
	mux.HandleFunc(http.MethodGet+" "+routepath.CharacterGuidesPattern, h.handleGuides)
	mux.HandleFunc(http.MethodGet+" "+routepath.CharacterFanArtPattern, h.handleFanArt)
	mux.HandleFunc(http.MethodPost+" "+routepath.CharacterFanArtPattern, h.handleSubmitFanArt)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
