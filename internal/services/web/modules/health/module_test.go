package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/mythic.nexus/internal/services/web/module"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
)

func TestMountServesHealth(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "health" {
		t.Fatalf("ID() = %q, want %q", got, "health")
	}
	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Health {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.Health)
	}

	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestHealthRejectsPost(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Health, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
