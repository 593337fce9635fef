package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/platform/branding"
	"github.com/louisbranch/mythic.nexus/internal/services/mcp/domain"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(mcpRegistrationTarget) error
}

const (
	mcpShowcaseToolsModuleName    = "showcase-tools"
	mcpFanArtToolsModuleName      = "fan-art-tools"
	mcpShowcaseResourceModuleName = "showcase-resources"
)

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResourceTemplate(resourceTemplate *mcp.ResourceTemplate, handler mcp.ResourceHandler) {
	r.server.AddResourceTemplate(resourceTemplate, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.FilterOptionsInput, domain.FilterOptionsResult](),
	newMCPToolRegistrar[domain.SearchInput, domain.SearchResult](),
	newMCPToolRegistrar[domain.FanArtListInput, domain.FanArtListResult](),
	newMCPToolRegistrar[domain.FanArtSubmitInput, domain.FanArtSubmitResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(sc *showcase.Showcase, notify domain.ResourceUpdateNotifier) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpShowcaseToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerShowcaseTools(registrar, sc)
			},
		},
		{
			name: mcpFanArtToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerFanArtTools(registrar, sc, notify)
			},
		},
		{
			name: mcpShowcaseResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registerShowcaseResources(registrar, sc)
				return nil
			},
		},
	}
}

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // defaults to localhost:8094 for HTTP transport
}

// Server hosts the MCP server over a shared Showcase.
type Server struct {
	mcpServer *mcp.Server
}

var errShowcaseRequired = errors.New("showcase is required")

// New creates a configured MCP server with every showcase tool and resource
// registered against sc.
func New(sc *showcase.Showcase) (*Server, error) {
	if sc == nil {
		return nil, errShowcaseRequired
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler:  completionHandler(sc),
		SubscribeHandler:   resourceSubscribeHandler,
		UnsubscribeHandler: resourceUnsubscribeHandler,
	})

	resourceNotifier := func(ctx context.Context, uri string) {
		if strings.TrimSpace(uri) == "" {
			return
		}
		if ctx == nil {
			ctx = context.Background()
		}
		if err := mcpServer.ResourceUpdated(ctx, &mcp.ResourceUpdatedNotificationParams{URI: uri}); err != nil {
			log.Printf("mcp resource updated notify failed: uri=%s err=%v", uri, err)
		}
	}

	for _, module := range newMCPRegistrationModules(sc, resourceNotifier) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}
	return &Server{mcpServer: mcpServer}, nil
}
