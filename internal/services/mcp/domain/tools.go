package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/showcase/fanart"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FilterOptionsTool defines the MCP tool schema for listing filter options.
func FilterOptionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "showcase_filter_options",
		Description: "Lists the role and difficulty filter options of the character roster",
	}
}

// SearchTool defines the MCP tool schema for filtering the roster.
func SearchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "showcase_search",
		Description: "Filters the character roster by text query, role and difficulty",
	}
}

// FanArtListTool defines the MCP tool schema for reading a gallery.
func FanArtListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fan_art_list",
		Description: "Lists a character's fan art, newest first",
	}
}

// FanArtSubmitTool defines the MCP tool schema for submitting fan art.
func FanArtSubmitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fan_art_submit",
		Description: "Adds a fan art entry to the head of a character's gallery",
	}
}

// FilterOptionsHandler returns the derived option lists.
func FilterOptionsHandler(sc *showcase.Showcase) mcp.ToolHandlerFor[FilterOptionsInput, FilterOptionsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ FilterOptionsInput) (*mcp.CallToolResult, FilterOptionsResult, error) {
		if sc == nil {
			return nil, FilterOptionsResult{}, errShowcaseMissing
		}
		options := sc.Options()
		return nil, FilterOptionsResult{Roles: options.Roles, Difficulties: options.Difficulties}, nil
	}
}

// SearchHandler filters the roster.
func SearchHandler(sc *showcase.Showcase) mcp.ToolHandlerFor[SearchInput, SearchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchResult, error) {
		if sc == nil {
			return nil, SearchResult{}, errShowcaseMissing
		}
		result := sc.Search(ctx, criteriaFromInput(input))
		return nil, SearchResult{
			Query:      result.Criteria.Query,
			Role:       result.Criteria.Role,
			Difficulty: result.Criteria.Difficulty,
			Total:      sc.Catalog().Len(),
			Count:      result.Len(),
			Characters: summarize(result.Characters),
		}, nil
	}
}

// FanArtListHandler reads a gallery. Unknown characters have an empty one.
func FanArtListHandler(sc *showcase.Showcase) mcp.ToolHandlerFor[FanArtListInput, FanArtListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FanArtListInput) (*mcp.CallToolResult, FanArtListResult, error) {
		if sc == nil {
			return nil, FanArtListResult{}, errShowcaseMissing
		}
		characterID := strings.TrimSpace(input.CharacterID)
		if characterID == "" {
			return nil, FanArtListResult{}, fmt.Errorf("character_id is required")
		}
		return nil, FanArtListResult{CharacterID: characterID, FanArt: sc.FanArt(characterID)}, nil
	}
}

// FanArtSubmitHandler stores a submission and notifies resource subscribers.
func FanArtSubmitHandler(sc *showcase.Showcase, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[FanArtSubmitInput, FanArtSubmitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FanArtSubmitInput) (*mcp.CallToolResult, FanArtSubmitResult, error) {
		if sc == nil {
			return nil, FanArtSubmitResult{}, errShowcaseMissing
		}
		characterID := strings.TrimSpace(input.CharacterID)
		if characterID == "" {
			return nil, FanArtSubmitResult{}, fmt.Errorf("character_id is required")
		}
		entry, err := sc.SubmitFanArt(ctx, characterID, fanart.Submission{
			Artist:   input.Artist,
			ImageURL: input.ImageURL,
			Caption:  input.Caption,
		})
		if err != nil {
			return nil, FanArtSubmitResult{}, fmt.Errorf("fan art submit failed: %w", err)
		}
		NotifyResourceUpdates(ctx, notify, CharacterResourceURI(characterID))
		return nil, FanArtSubmitResult{CharacterID: characterID, FanArt: entry}, nil
	}
}
