package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/mythic.nexus/internal/showcase"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"go.uber.org/goleak"
)

func newTestConfig(t *testing.T) Config {
	t.Helper()

	c, err := catalog.Seed()
	if err != nil {
		t.Fatalf("catalog.Seed() error = %v", err)
	}
	return Config{
		HTTPAddr: "127.0.0.1:0",
		Showcase: showcase.New(c),
		Logger:   log.New(io.Discard, "", 0),
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	h, err := NewHandler(newTestConfig(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestNewHandlerRequiresShowcase(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{}); err == nil {
		t.Fatal("expected error for missing showcase")
	}
}

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.HTTPAddr = "  "
	if _, err := NewServer(context.Background(), cfg); err == nil {
		t.Fatal("expected error for blank http address")
	}
	if _, err := NewServer(nil, newTestConfig(t)); err == nil {
		t.Fatal("expected error for nil context")
	}
}

func TestHandlerRoutesModules(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantType    string
		wantContain string
	}{
		{name: "index", target: "/", wantStatus: http.StatusOK, wantType: "text/html; charset=utf-8", wantContain: `id="results"`},
		{name: "character", target: "/characters/ember-knight", wantStatus: http.StatusOK, wantType: "text/html; charset=utf-8", wantContain: `id="character-ember-knight"`},
		{name: "health", target: "/up", wantStatus: http.StatusOK, wantType: "text/plain; charset=utf-8", wantContain: "ok"},
		{name: "api", target: "/api/characters?q=frost", wantStatus: http.StatusOK, wantType: "application/json; charset=utf-8", wantContain: `"lyra-vale"`},
		{name: "static", target: "/static/showcase.css", wantStatus: http.StatusOK, wantType: "text/css; charset=utf-8", wantContain: "--neon"},
		{name: "missing page", target: "/nope", wantStatus: http.StatusNotFound, wantType: "text/html; charset=utf-8", wantContain: `data-status="404"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.target, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if got := rr.Header().Get("Content-Type"); got != tc.wantType {
				t.Fatalf("content-type = %q, want %q", got, tc.wantType)
			}
			if !strings.Contains(rr.Body.String(), tc.wantContain) {
				t.Fatalf("body missing %q: %q", tc.wantContain, rr.Body.String())
			}
			if rr.Header().Get("X-Request-ID") == "" {
				t.Fatal("missing X-Request-ID header")
			}
		})
	}
}

func TestHandlerPersistsLanguageChoice(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), "mn_lang=pt-BR") {
		t.Fatalf("set-cookie = %q, want language cookie", rr.Header().Get("Set-Cookie"))
	}
	if !strings.Contains(rr.Body.String(), `lang="pt-BR"`) {
		t.Fatalf("body missing pt-BR document language")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	srv, err := NewServer(ctx, newTestConfig(t))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}

func TestListenAndServeNilServer(t *testing.T) {
	t.Parallel()

	var srv *Server
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	srv.Close()
}
