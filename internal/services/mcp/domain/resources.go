package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const characterURIPrefix = "showcase://characters/"

var errShowcaseMissing = errors.New("showcase is not configured")

// ResourceUpdateNotifier tells subscribed clients that a resource changed.
type ResourceUpdateNotifier func(ctx context.Context, uri string)

// NotifyResourceUpdates notifies each non-blank uri once.
func NotifyResourceUpdates(ctx context.Context, notify ResourceUpdateNotifier, uris ...string) {
	if notify == nil {
		return
	}
	seen := make(map[string]struct{}, len(uris))
	for _, uri := range uris {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			continue
		}
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}
		notify(ctx, uri)
	}
}

// CharacterResourceURI returns the resource URI of one character.
func CharacterResourceURI(characterID string) string {
	return characterURIPrefix + characterID
}

// RosterResource defines the MCP resource for the whole roster.
func RosterResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "roster",
		Title:       "Character roster",
		Description: "Every character in catalog order",
		MIMEType:    "application/json",
		URI:         "showcase://characters",
	}
}

// CharacterResourceTemplate defines the MCP resource template for one character.
func CharacterResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "character",
		Title:       "Character",
		Description: "One character with its live fan art gallery. URI format: showcase://characters/{character_id}",
		MIMEType:    "application/json",
		URITemplate: characterURIPrefix + "{character_id}",
	}
}

// RosterResourceHandler returns a readable roster listing.
func RosterResourceHandler(sc *showcase.Showcase) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if sc == nil {
			return nil, errShowcaseMissing
		}
		uri := RosterResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return jsonResource(uri, struct {
			Characters []CharacterSummary `json:"characters"`
		}{Characters: summarize(sc.Catalog().Characters())})
	}
}

// CharacterResourceHandler returns one character with its live gallery.
func CharacterResourceHandler(sc *showcase.Showcase) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if sc == nil {
			return nil, errShowcaseMissing
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("character ID is required; use URI format showcase://characters/{character_id}")
		}
		uri := req.Params.URI
		characterID, err := parseCharacterIDFromURI(uri)
		if err != nil {
			return nil, fmt.Errorf("parse character ID from URI: %w", err)
		}
		character, ok := sc.Character(characterID)
		if !ok {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return jsonResource(uri, CharacterPayload{Character: character, FanArt: sc.FanArt(characterID)})
	}
}

func parseCharacterIDFromURI(uri string) (string, error) {
	id, ok := strings.CutPrefix(uri, characterURIPrefix)
	if !ok {
		return "", fmt.Errorf("URI must start with %q", characterURIPrefix)
	}
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("URI must name exactly one character")
	}
	return id, nil
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
