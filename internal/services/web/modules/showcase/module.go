// Package showcase serves the character showcase pages and their HTMX
// fragments.
package showcase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/louisbranch/mythic.nexus/internal/services/web/module"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
)

var errShowcaseRequired = errors.New("showcase is required")

// Module provides the roster page, the single-character page and the card
// fragments they swap in.
type Module struct{}

// New returns a showcase module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "showcase" }

// Mount wires showcase route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Showcase == nil {
		return module.Mount{}, fmt.Errorf("mount showcase module: %w", errShowcaseRequired)
	}
	if err := webi18n.Register(); err != nil {
		return module.Mount{}, fmt.Errorf("mount showcase module: %w", err)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps.Showcase))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
