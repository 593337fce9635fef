// Package showcase composes the catalog, the filter engine and the fan-art
// store into the single state object shared by every transport.
//
// A Showcase is created once per process and passed by reference; there is no
// package-level state.
package showcase

import (
	"context"

	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/showcase/fanart"
	"github.com/louisbranch/mythic.nexus/internal/showcase/filter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/mythic.nexus/internal/showcase"

type settings struct {
	tracerProvider trace.TracerProvider
	fanArtOptions  []fanart.Option
}

// Option configures a Showcase.
type Option func(*settings)

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		if tp != nil {
			s.tracerProvider = tp
		}
	}
}

// WithFanArtOptions forwards options to the underlying fan-art store.
func WithFanArtOptions(opts ...fanart.Option) Option {
	return func(s *settings) {
		s.fanArtOptions = append(s.fanArtOptions, opts...)
	}
}

// Showcase is the process-wide showcase state.
type Showcase struct {
	catalog *catalog.Catalog
	options filter.Options
	fanArt  *fanart.Store
	tracer  trace.Tracer
}

// New builds a Showcase over c, deriving filter options once.
func New(c *catalog.Catalog, opts ...Option) *Showcase {
	cfg := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	tp := cfg.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Showcase{
		catalog: c,
		options: filter.DeriveOptions(c),
		fanArt:  fanart.New(c, cfg.fanArtOptions...),
		tracer:  tp.Tracer(tracerName),
	}
}

// Catalog returns the read-only roster.
func (s *Showcase) Catalog() *catalog.Catalog {
	return s.catalog
}

// Options returns the role and difficulty option lists.
func (s *Showcase) Options() filter.Options {
	return filter.Options{
		Roles:        append([]string(nil), s.options.Roles...),
		Difficulties: append([]string(nil), s.options.Difficulties...),
	}
}

// Search filters the catalog.
func (s *Showcase) Search(ctx context.Context, criteria filter.Criteria) filter.Result {
	_, span := s.tracer.Start(ctx, "showcase.Search")
	defer span.End()

	result := filter.Apply(s.catalog, criteria)
	span.SetAttributes(
		attribute.String("showcase.query", result.Criteria.Query),
		attribute.String("showcase.role", result.Criteria.Role),
		attribute.String("showcase.difficulty", result.Criteria.Difficulty),
		attribute.Int("showcase.matches", result.Len()),
	)
	return result
}

// Character looks up one character by id.
func (s *Showcase) Character(id string) (catalog.Character, bool) {
	return s.catalog.Lookup(id)
}

// FanArt returns the live gallery for a character, most recent first.
func (s *Showcase) FanArt(characterID string) []catalog.FanArt {
	return s.fanArt.Get(characterID)
}

// SubmitFanArt stores a new fan-art entry at the head of a character's gallery.
func (s *Showcase) SubmitFanArt(ctx context.Context, characterID string, sub fanart.Submission) (catalog.FanArt, error) {
	_, span := s.tracer.Start(ctx, "showcase.SubmitFanArt",
		trace.WithAttributes(attribute.String("showcase.character_id", characterID)))
	defer span.End()

	entry, err := s.fanArt.Submit(characterID, sub)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return catalog.FanArt{}, err
	}
	span.SetAttributes(attribute.String("showcase.fan_art_id", entry.ID))
	return entry, nil
}
