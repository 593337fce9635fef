package modules

import (
	"github.com/louisbranch/mythic.nexus/internal/services/web/modules/api"
	"github.com/louisbranch/mythic.nexus/internal/services/web/modules/health"
	"github.com/louisbranch/mythic.nexus/internal/services/web/modules/showcase"
)

// DefaultModules returns the modules served by the showcase web service. The
// showcase module owns the root prefix and its not-found fallback.
func DefaultModules() []Module {
	return []Module{
		health.New(),
		api.New(),
		showcase.New(),
	}
}
