// Package fanart keeps the live, per-character fan-art galleries.
//
// Galleries start from each character's catalog seed and grow by submission
// only. Every submission replaces the target character's slice with a new one;
// all other slices keep their identity, so a renderer can detect change by
// comparing slice headers.
package fanart

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/louisbranch/mythic.nexus/internal/platform/errors"
	"github.com/louisbranch/mythic.nexus/internal/platform/id"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
)

const maxIDAttempts = 8

// Localization keys for submission rejections.
const (
	ErrKeyArtistRequired   = "showcase.fan_art.error_artist_required"
	ErrKeyImageRequired    = "showcase.fan_art.error_image_required"
	ErrKeyUnknownCharacter = "showcase.fan_art.error_unknown_character"
)

// Submission is the user-entered part of a FanArt entry.
type Submission struct {
	Artist   string `validate:"required"`
	ImageURL string `validate:"required"`
	Caption  string
}

// Trimmed returns the submission with surrounding whitespace removed.
func (s Submission) Trimmed() Submission {
	return Submission{
		Artist:   strings.TrimSpace(s.Artist),
		ImageURL: strings.TrimSpace(s.ImageURL),
		Caption:  strings.TrimSpace(s.Caption),
	}
}

// DefaultCaption returns the caption used when a submission leaves it blank.
func DefaultCaption(characterName string) string {
	return fmt.Sprintf("%s fan art submission", characterName)
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the random suffix source used for new entry ids.
func WithIDSource(next func() (string, error)) Option {
	return func(s *Store) {
		if next != nil {
			s.nextSuffix = next
		}
	}
}

// Store maps character ids to their fan-art galleries, most recent first.
type Store struct {
	mu         sync.RWMutex
	catalog    *catalog.Catalog
	galleries  map[string][]catalog.FanArt
	nextSuffix func() (string, error)
	validate   *validator.Validate
}

// New seeds a Store from every character's catalog fan art.
func New(c *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		catalog:    c,
		galleries:  make(map[string][]catalog.FanArt, c.Len()),
		nextSuffix: id.NewID,
		validate:   validator.New(),
	}
	c.Each(func(character catalog.Character) {
		seed := make([]catalog.FanArt, len(character.FanArt))
		copy(seed, character.FanArt)
		s.galleries[character.ID] = seed
	})
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Get returns the gallery for characterID, or an empty slice for unknown ids.
// The returned slice is shared and must be treated as read-only.
func (s *Store) Get(characterID string) []catalog.FanArt {
	if s == nil {
		return []catalog.FanArt{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	gallery, ok := s.galleries[characterID]
	if !ok {
		return []catalog.FanArt{}
	}
	return gallery[:len(gallery):len(gallery)]
}

// Snapshot returns every gallery keyed by character id. Values are shared
// read-only slices; the map itself belongs to the caller.
func (s *Store) Snapshot() map[string][]catalog.FanArt {
	if s == nil {
		return map[string][]catalog.FanArt{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]catalog.FanArt, len(s.galleries))
	for characterID, gallery := range s.galleries {
		out[characterID] = gallery[:len(gallery):len(gallery)]
	}
	return out
}

// Submit validates sub, stores it at the head of characterID's gallery and
// returns the stored entry. Rejected submissions leave the store unchanged.
func (s *Store) Submit(characterID string, sub Submission) (catalog.FanArt, error) {
	if s == nil {
		return catalog.FanArt{}, apperrors.E(apperrors.KindUnavailable, "fan art store is not configured")
	}
	sub = sub.Trimmed()
	if err := s.check(sub); err != nil {
		return catalog.FanArt{}, err
	}
	character, ok := s.catalog.Lookup(characterID)
	if !ok {
		return catalog.FanArt{}, apperrors.EK(apperrors.KindNotFound, ErrKeyUnknownCharacter, fmt.Sprintf("character %q not found", characterID))
	}
	caption := sub.Caption
	if caption == "" {
		caption = DefaultCaption(character.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.galleries[characterID]
	entryID, err := s.uniqueID(characterID, current)
	if err != nil {
		return catalog.FanArt{}, err
	}
	entry := catalog.FanArt{
		ID:       entryID,
		Artist:   sub.Artist,
		ImageURL: sub.ImageURL,
		Caption:  caption,
	}
	next := make([]catalog.FanArt, 0, len(current)+1)
	next = append(next, entry)
	next = append(next, current...)
	s.galleries[characterID] = next
	return entry, nil
}

func (s *Store) check(sub Submission) error {
	err := s.validate.Struct(sub)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate submission: %w", err)
	}
	switch fieldErrs[0].Field() {
	case "Artist":
		return apperrors.EK(apperrors.KindInvalidInput, ErrKeyArtistRequired, "artist is required")
	default:
		return apperrors.EK(apperrors.KindInvalidInput, ErrKeyImageRequired, "image url is required")
	}
}

func (s *Store) uniqueID(characterID string, gallery []catalog.FanArt) (string, error) {
	taken := make(map[string]struct{}, len(gallery))
	for _, art := range gallery {
		taken[art.ID] = struct{}{}
	}
	for range maxIDAttempts {
		suffix, err := s.nextSuffix()
		if err != nil {
			return "", fmt.Errorf("generate fan art id: %w", err)
		}
		candidate := characterID + "-" + suffix
		if _, exists := taken[candidate]; !exists {
			return candidate, nil
		}
	}
	return "", apperrors.E(apperrors.KindConflict, fmt.Sprintf("could not generate a unique fan art id for %q", characterID))
}
