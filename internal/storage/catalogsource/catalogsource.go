// Package catalogsource resolves the roster a process serves: the embedded
// seed, or a catalog database filled by catalog-importer.
package catalogsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/platform/timeouts"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/storage/sqlite"
)

// Load returns the embedded seed when dbPath is blank, otherwise the roster
// stored in the SQLite database at dbPath.
func Load(ctx context.Context, dbPath string) (*catalog.Catalog, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return catalog.Seed()
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.CatalogLoad)
	defer cancel()

	store, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer store.Close()

	characters, err := store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog db: %w", err)
	}
	if len(characters) == 0 {
		return nil, fmt.Errorf("catalog db %s is empty; run catalog-importer first", dbPath)
	}
	c, err := catalog.New(characters)
	if err != nil {
		return nil, fmt.Errorf("validate catalog db: %w", err)
	}
	return c, nil
}
