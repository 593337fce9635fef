// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/mythic.nexus/internal/platform/cmd"
	mcpservice "github.com/louisbranch/mythic.nexus/internal/services/mcp/service"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/storage/catalogsource"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr  string `env:"MCP_HTTP_ADDR" envDefault:"localhost:8094"`
	Transport string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	CatalogDB string `env:"CATALOG_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.CatalogDB, "catalog-db", cfg.CatalogDB, "catalog database path (defaults to the embedded seed)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		c, err := catalogsource.Load(ctx, cfg.CatalogDB)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		return mcpservice.Run(ctx, showcase.New(c), mcpservice.Config{
			Transport: mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
		})
	})
}
