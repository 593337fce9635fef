package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, mw2)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestChainHandlesNilHandlerAndMiddleware(t *testing.T) {
	t.Parallel()

	h := Chain(nil, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no-route", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if !strings.HasPrefix(rid, requestIDPrefix) {
			t.Fatalf("request id = %q, want %s prefix", rid, requestIDPrefix)
		}
		if _, err := uuid.Parse(strings.TrimPrefix(rid, requestIDPrefix)); err != nil {
			t.Fatalf("request id suffix is not a uuid: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected response to include request id")
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Request-ID"); got != "req-123" {
			t.Fatalf("request id = %q, want %q", got, "req-123")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("response request id = %q, want %q", got, "req-123")
	}
}

func TestRecoverPanicLogsRequestContext(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Request-ID", "req-123")
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	logLine := buffer.String()
	for _, marker := range []string{"panic recovered", "method=GET", "path=/panic", "request_id=req-123", "panic=boom"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("panic log missing marker %q: %q", marker, logLine)
		}
	}
}

func TestWriteJSONSetsContentTypeAndBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := WriteJSON(rr, http.StatusCreated, struct {
		Value string `json:"value"`
	}{Value: "ok"})
	if err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "application/json; charset=utf-8")
	}
	if body := rr.Body.String(); !strings.Contains(body, `"value":"ok"`) {
		t.Fatalf("body = %q, want encoded json", body)
	}
}

func TestWriteTextSetsContentType(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteText(rr, http.StatusOK, "ok"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/plain; charset=utf-8")
	}
	if got := rr.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestWritersRequireResponseWriter(t *testing.T) {
	t.Parallel()

	if err := WriteJSON(nil, http.StatusOK, map[string]string{"ok": "true"}); err == nil {
		t.Fatalf("expected WriteJSON(nil) error")
	}
	if err := WriteText(nil, http.StatusOK, "ok"); err == nil {
		t.Fatalf("expected WriteText(nil) error")
	}
}

func TestIsHTMXRequestDetectsHeader(t *testing.T) {
	t.Parallel()

	if IsHTMXRequest(nil) {
		t.Fatalf("expected nil request to be non-HTMX")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatalf("expected non-htmx request")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(req) {
		t.Fatalf("expected htmx request")
	}
}

func TestWriteRedirectUsesSeeOtherForPlainForms(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/characters/ember-knight/fan-art", nil)
	rr := httptest.NewRecorder()
	WriteRedirect(rr, req, "/?expanded=ember-knight")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/?expanded=ember-knight" {
		t.Fatalf("Location = %q, want %q", got, "/?expanded=ember-knight")
	}
	if got := rr.Header().Get("HX-Redirect"); got != "" {
		t.Fatalf("HX-Redirect = %q, want empty", got)
	}
}

func TestWriteRedirectUsesHXRedirectForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/characters/ember-knight/fan-art", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteRedirect(rr, req, "/?expanded=ember-knight")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Redirect"); got != "/?expanded=ember-knight" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/?expanded=ember-knight")
	}
}

func TestWriteRedirectHandlesNilRequest(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteRedirect(rr, nil, "/")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/" {
		t.Fatalf("Location = %q, want %q", got, "/")
	}
	WriteRedirect(nil, nil, "/ignored")
	writeHXRedirect(nil, "/ignored")
}
