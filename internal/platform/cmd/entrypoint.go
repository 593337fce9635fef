// Package cmd holds the startup plumbing shared by every binary under cmd/.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/platform/config"
	"github.com/louisbranch/mythic.nexus/internal/platform/otel"
	"github.com/louisbranch/mythic.nexus/internal/platform/timeouts"
)

// Service names used for telemetry resources and log prefixes.
const (
	ServiceShowcase        = "showcase"
	ServiceMCP             = "mcp"
	ServiceCatalogImporter = "catalog-importer"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for service, runs run, then flushes spans.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("service=%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
