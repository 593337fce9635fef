package service

import (
	"github.com/louisbranch/mythic.nexus/internal/services/mcp/domain"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResourceTemplate(*mcp.ResourceTemplate, mcp.ResourceHandler)
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

func registerShowcaseTools(registrar mcpRegistrationTarget, sc *showcase.Showcase) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.FilterOptionsTool(), handler: domain.FilterOptionsHandler(sc)},
		{tool: domain.SearchTool(), handler: domain.SearchHandler(sc)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerFanArtTools(registrar mcpRegistrationTarget, sc *showcase.Showcase, notify domain.ResourceUpdateNotifier) error {
	if err := registerTool(registrar, domain.FanArtListTool(), domain.FanArtListHandler(sc)); err != nil {
		return err
	}
	return registerTool(registrar, domain.FanArtSubmitTool(), domain.FanArtSubmitHandler(sc, notify))
}

func registerShowcaseResources(registrar mcpRegistrationTarget, sc *showcase.Showcase) {
	registrar.AddResource(domain.RosterResource(), domain.RosterResourceHandler(sc))
	registrar.AddResourceTemplate(domain.CharacterResourceTemplate(), domain.CharacterResourceHandler(sc))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	return registrar.AddTool(tool, handler)
}
