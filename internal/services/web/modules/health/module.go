// Package health serves the liveness probe.
package health

import (
	"log"
	"net/http"

	"github.com/louisbranch/mythic.nexus/internal/services/web/module"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/httpx"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
)

// Module answers GET /up.
type Module struct{}

// New returns a health module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the health route.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	return module.Mount{Prefix: routepath.Health, Handler: mux}, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteText(w, http.StatusOK, "ok"); err != nil {
		log.Printf("health: write response: %v", err)
	}
}
