package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/platform/timeouts"
	"github.com/louisbranch/mythic.nexus/internal/services/web/app"
	"github.com/louisbranch/mythic.nexus/internal/services/web/module"
	"github.com/louisbranch/mythic.nexus/internal/services/web/modules"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/observability"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
	"github.com/louisbranch/mythic.nexus/internal/services/web/static"
	"github.com/louisbranch/mythic.nexus/internal/showcase"
)

// Config defines the inputs for the showcase web server.
type Config struct {
	HTTPAddr string
	Showcase *showcase.Showcase
	// Logger receives request logs; the standard logger is used when nil.
	Logger *log.Logger
}

// Server hosts the showcase HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler composes the module registry, static assets and the shared
// middleware into the root handler.
func NewHandler(config Config) (http.Handler, error) {
	if config.Showcase == nil {
		return nil, errors.New("showcase is required")
	}
	composed, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies: module.Dependencies{Showcase: config.Showcase},
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	root := http.NewServeMux()
	root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	root.Handle(routepath.Root, composed)

	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(),
		webi18n.PersistLanguage(),
	), nil
}

// NewServer builds a configured web server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("showcase listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
