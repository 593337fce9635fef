// Package api serves the showcase state as JSON.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/louisbranch/mythic.nexus/internal/services/web/module"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
)

var errShowcaseRequired = errors.New("showcase is required")

// Module provides read access to the roster and fan-art submission over JSON.
type Module struct{}

// New returns an API module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires JSON route handlers under /api/.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Showcase == nil {
		return module.Mount{}, fmt.Errorf("mount api module: %w", errShowcaseRequired)
	}
	if err := webi18n.Register(); err != nil {
		return module.Mount{}, fmt.Errorf("mount api module: %w", err)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps.Showcase))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
