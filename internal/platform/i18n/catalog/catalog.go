// Package catalog loads the UI message catalogs and registers them with
// golang.org/x/text/message.
//
// Files live at locales/<locale>/<namespace>.yaml and carry the locale and
// namespace again in their body so a misplaced file fails to load.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every message keyed by locale.
type Bundle struct {
	locales map[string]map[string]string
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads catalogs from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var parsed file
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&parsed); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, parsed); err != nil {
			return nil, err
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) add(p string, f file) error {
	wantLocale := path.Base(path.Dir(p))
	wantNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))

	if strings.TrimSpace(f.Locale) != wantLocale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, f.Locale, wantLocale)
	}
	if strings.TrimSpace(f.Namespace) != wantNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, f.Namespace, wantNamespace)
	}
	if len(f.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	messages, ok := b.locales[wantLocale]
	if !ok {
		messages = map[string]string{}
		b.locales[wantLocale] = messages
	}
	for key, value := range f.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if !strings.HasPrefix(key, wantNamespace+".") {
			return fmt.Errorf("catalog %s: key %q must start with %q", p, key, wantNamespace+".")
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, wantLocale)
		}
		messages[key] = value
	}
	return nil
}

// Register installs every message into the x/text/message default catalog.
// Locales missing a key inherit the base locale text for it.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	base := b.locales[BaseLocale]
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for key, value := range base {
			if localized, ok := b.locales[locale][key]; ok {
				value = localized
			}
			if err := message.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether locale has a catalog.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message, falling back to the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if value, ok := b.locales[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// MissingKeys lists base-locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	var missing []string
	for key := range b.locales[BaseLocale] {
		if _, ok := b.locales[locale][key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
