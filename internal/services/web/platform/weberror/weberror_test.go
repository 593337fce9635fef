package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/mythic.nexus/internal/platform/errors"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestMain(m *testing.M) {
	if err := webi18n.Register(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestWriteModuleErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/characters/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{`class="error-state"`, `data-status="404"`, "Character not found"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteAppErrorCoercesClientStatusToInternal(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestPublicMessagePrefersLocalizedKey(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.BrazilianPortuguese)
	err := apperrors.EK(apperrors.KindInvalidInput, "showcase.fan_art.error_artist_required", "artist is required")
	if got := PublicMessage(loc, err); got == "" || got == "artist is required" || got == "showcase.fan_art.error_artist_required" {
		t.Fatalf("PublicMessage() = %q, want localized copy", got)
	}
	if got := PublicMessage(loc, errors.New("db exploded")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(untyped) = %q, want %q", got, http.StatusText(http.StatusInternalServerError))
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}
