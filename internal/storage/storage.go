// Package storage defines persistence contracts for the character catalog.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
)

var (
	// ErrNotFound indicates a requested character is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness constraint rejected a write.
	ErrAlreadyExists = errors.New("record already exists")
)

// CatalogStore persists the roster that seeds the showcase.
type CatalogStore interface {
	// ReplaceCatalog swaps the stored roster for characters in one transaction.
	ReplaceCatalog(ctx context.Context, characters []catalog.Character) error
	// LoadCatalog returns every stored character in roster order.
	LoadCatalog(ctx context.Context) ([]catalog.Character, error)
	// GetCharacter returns one stored character.
	GetCharacter(ctx context.Context, id string) (catalog.Character, error)
}
