// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/mythic.nexus/internal/showcase"
)

// Dependencies carries shared state handed to every module at mount time.
type Dependencies struct {
	Showcase *showcase.Showcase
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
