// Package main loads a character roster into the showcase catalog database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/mythic.nexus/internal/platform/config"
	catalogimporter "github.com/louisbranch/mythic.nexus/internal/tools/importer/catalog"
)

func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := catalogimporter.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
