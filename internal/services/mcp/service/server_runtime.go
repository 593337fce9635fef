package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/platform/timeouts"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultHTTPAddr     = "localhost:8094"
	characterIDArgument = "character_id"
	maxCompletionValues = 100
)

// completionHandler suggests character ids for the character resource template.
func completionHandler(sc *showcase.Showcase) func(context.Context, *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return func(_ context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
		values := []string{}
		if req != nil && req.Params != nil && req.Params.Argument.Name == characterIDArgument {
			prefix := strings.ToLower(strings.TrimSpace(req.Params.Argument.Value))
			sc.Catalog().Each(func(character catalog.Character) {
				if len(values) < maxCompletionValues && strings.HasPrefix(character.ID, prefix) {
					values = append(values, character.ID)
				}
			})
		}
		return &mcp.CompleteResult{
			Completion: mcp.CompletionResultDetails{
				Values: values,
				Total:  len(values),
			},
		}, nil
	}
}

// resourceSubscribeHandler accepts resource subscriptions with a valid URI.
func resourceSubscribeHandler(_ context.Context, req *mcp.SubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

// resourceUnsubscribeHandler accepts resource unsubscriptions with a valid URI.
func resourceUnsubscribeHandler(_ context.Context, req *mcp.UnsubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, sc *showcase.Showcase, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, sc, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, sc, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, sc *showcase.Showcase, transport mcp.Transport) error {
	server, err := New(sc)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

// runWithHTTPTransport serves every MCP session from one shared server over
// streamable HTTP.
func runWithHTTPTransport(ctx context.Context, sc *showcase.Showcase, cfg Config) error {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}
	server, err := New(sc)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           server.HTTPHandler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("mcp listening on %s", httpAddr)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown mcp http server: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve mcp http: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve mcp http: %w", err)
	}
}

// HTTPHandler returns a streamable HTTP handler bound to this server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
