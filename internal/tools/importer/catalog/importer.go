// Package catalogimporter loads a YAML character roster into the catalog
// database served by the showcase.
package catalogimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/storage/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	File   string
	DBPath string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{DBPath: filepath.Join("data", "catalog.db")}

	fs.StringVar(&cfg.File, "file", "", "roster YAML file (defaults to the embedded seed)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run validates the roster and, unless DryRun is set, replaces the stored one.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	characters, source, err := readRoster(cfg.File)
	if err != nil {
		return err
	}
	if _, err := catalog.New(characters); err != nil {
		return fmt.Errorf("validate %s: %w", source, err)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d character(s) from %s\n", len(characters), source)
		return err
	}

	store, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	defer store.Close()
	if err := store.ReplaceCatalog(ctx, characters); err != nil {
		return fmt.Errorf("import %s: %w", source, err)
	}
	_, err = fmt.Fprintf(out, "imported %d character(s) from %s into %s\n", len(characters), source, cfg.DBPath)
	return err
}

func readRoster(path string) ([]catalog.Character, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		seed, err := catalog.Seed()
		if err != nil {
			return nil, "", err
		}
		return seed.Characters(), "embedded seed", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	characters, err := catalog.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return characters, path, nil
}
