package domain

import (
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/showcase/filter"
)

// FilterOptionsInput represents the MCP tool input for listing filter options.
type FilterOptionsInput struct{}

// FilterOptionsResult lists the role and difficulty choices, sentinel first.
type FilterOptionsResult struct {
	Roles        []string `json:"roles" jsonschema:"role options; the first entry matches every role"`
	Difficulties []string `json:"difficulties" jsonschema:"difficulty options; the first entry matches every difficulty"`
}

// SearchInput represents the MCP tool input for filtering the roster.
type SearchInput struct {
	Query      string `json:"query,omitempty" jsonschema:"case-insensitive text matched against name, tagline and background"`
	Role       string `json:"role,omitempty" jsonschema:"exact role, or All Roles"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"exact difficulty, or All Difficulties"`
}

// CharacterSummary is the compact roster entry returned by search.
type CharacterSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	Role       string `json:"role"`
	Difficulty string `json:"difficulty"`
	Faction    string `json:"faction"`
}

// SearchResult is the ordered set of matching characters.
type SearchResult struct {
	Query      string             `json:"query"`
	Role       string             `json:"role"`
	Difficulty string             `json:"difficulty"`
	Total      int                `json:"total"`
	Count      int                `json:"count"`
	Characters []CharacterSummary `json:"characters"`
}

// FanArtListInput represents the MCP tool input for reading a gallery.
type FanArtListInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// FanArtListResult is a character's gallery, newest first.
type FanArtListResult struct {
	CharacterID string           `json:"character_id"`
	FanArt      []catalog.FanArt `json:"fan_art"`
}

// FanArtSubmitInput represents the MCP tool input for submitting fan art.
type FanArtSubmitInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Artist      string `json:"artist" jsonschema:"artist name"`
	ImageURL    string `json:"image_url" jsonschema:"image URL"`
	Caption     string `json:"caption,omitempty" jsonschema:"optional caption; blank captions get a default naming the character"`
}

// FanArtSubmitResult is the stored entry.
type FanArtSubmitResult struct {
	CharacterID string         `json:"character_id"`
	FanArt      catalog.FanArt `json:"fan_art"`
}

// CharacterPayload is the resource view of one character with its live gallery.
type CharacterPayload struct {
	catalog.Character
	FanArt []catalog.FanArt `json:"fan_art"`
}

func summarize(characters []catalog.Character) []CharacterSummary {
	out := make([]CharacterSummary, 0, len(characters))
	for _, c := range characters {
		out = append(out, CharacterSummary{
			ID:         c.ID,
			Name:       c.Name,
			Tagline:    c.Tagline,
			Role:       c.Role,
			Difficulty: c.Difficulty,
			Faction:    c.Faction,
		})
	}
	return out
}

func criteriaFromInput(input SearchInput) filter.Criteria {
	return filter.Criteria{Query: input.Query, Role: input.Role, Difficulty: input.Difficulty}
}
