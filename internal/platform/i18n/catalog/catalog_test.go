package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasEveryLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	for _, locale := range []string{"en-US", "pt-BR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("HasLocale(%q) = false, want true", locale)
		}
	}
	if missing := bundle.MissingKeys("pt-BR"); len(missing) != 0 {
		t.Fatalf("pt-BR is missing keys: %v", missing)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	got, ok := bundle.Message("fr-FR", "showcase.card.expand")
	if !ok || got != "Explore Full Profile" {
		t.Fatalf("Message(fr-FR) = (%q, %v), want English fallback", got, ok)
	}
	if _, ok := bundle.Message("en-US", "showcase.nope"); ok {
		t.Fatal("Message(unknown key) ok = true, want false")
	}
}

func TestRegisterInstallsPrinterMessages(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	if err := bundle.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	p := message.NewPrinter(language.BrazilianPortuguese)
	if got := p.Sprintf("showcase.fan_art.by", "Kay"); got != "por Kay" {
		t.Fatalf("Sprintf(by) = %q, want %q", got, "por Kay")
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	base := `locale: "en-US"
namespace: "showcase"
messages:
  "showcase.ok": "ok"
`
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{name: "empty fs", files: fstest.MapFS{}},
		{name: "missing base locale", files: fstest.MapFS{
			"locales/pt-BR/showcase.yaml": {Data: []byte("locale: \"pt-BR\"\nnamespace: \"showcase\"\nmessages:\n  \"showcase.ok\": \"ok\"\n")},
		}},
		{name: "locale mismatch", files: fstest.MapFS{
			"locales/en-US/showcase.yaml": {Data: []byte("locale: \"pt-BR\"\nnamespace: \"showcase\"\nmessages:\n  \"showcase.ok\": \"ok\"\n")},
		}},
		{name: "key outside namespace", files: fstest.MapFS{
			"locales/en-US/showcase.yaml": {Data: []byte(base + "  \"other.key\": \"no\"\n")},
		}},
		{name: "unknown field", files: fstest.MapFS{
			"locales/en-US/showcase.yaml": {Data: []byte(base + "extra: true\n")},
		}},
		{name: "no messages", files: fstest.MapFS{
			"locales/en-US/showcase.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"showcase\"\n")},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFromFS(tc.files); err == nil {
				t.Fatal("LoadFromFS() error = nil, want error")
			}
		})
	}
}
