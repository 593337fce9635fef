package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "forbidden", err: E(KindForbidden, "cross origin"), want: http.StatusForbidden},
		{name: "conflict", err: E(KindConflict, "taken"), want: http.StatusConflict},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "unknown kind", err: E(KindUnknown, "odd"), want: http.StatusInternalServerError},
		{name: "untyped", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("submit: %w", E(KindInvalidInput, "bad")), want: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus(err) = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestLocalizationKeyReturnsStructuredKey(t *testing.T) {
	t.Parallel()

	err := EK(KindInvalidInput, " showcase.fan_art.error_artist_required ", "artist is required")
	if got := LocalizationKey(err); got != "showcase.fan_art.error_artist_required" {
		t.Fatalf("LocalizationKey(err) = %q, want %q", got, "showcase.fan_art.error_artist_required")
	}
	if got := LocalizationKey(errors.New("boom")); got != "" {
		t.Fatalf("LocalizationKey(untyped) = %q, want empty", got)
	}
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	if !IsKind(E(KindNotFound, "x"), KindNotFound) {
		t.Fatalf("IsKind(not found) = false, want true")
	}
	if IsKind(nil, KindUnknown) {
		t.Fatalf("IsKind(nil) = true, want false")
	}
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Fatalf("KindOf(untyped) = %q, want %q", got, KindUnknown)
	}
}
