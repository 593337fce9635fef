// Package showcase parses showcase web flags and launches the HTTP service.
package showcase

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/mythic.nexus/internal/platform/cmd"
	"github.com/louisbranch/mythic.nexus/internal/services/web"
	domain "github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/storage/catalogsource"
)

// Config holds showcase command configuration.
type Config struct {
	HTTPAddr  string `env:"SHOWCASE_HTTP_ADDR" envDefault:"localhost:8093"`
	CatalogDB string `env:"CATALOG_DB"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogDB, "catalog-db", cfg.CatalogDB, "catalog database path (defaults to the embedded seed)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the roster and serves the showcase until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceShowcase, func(ctx context.Context) error {
		c, err := catalogsource.Load(ctx, cfg.CatalogDB)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		log.Printf("catalog loaded: characters=%d source=%q", c.Len(), catalogSourceLabel(cfg.CatalogDB))

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Showcase: domain.New(c),
		})
		if err != nil {
			return err
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}

func catalogSourceLabel(dbPath string) string {
	if dbPath == "" {
		return "embedded seed"
	}
	return dbPath
}
