// Package i18n resolves the request language for web handlers and installs
// the embedded UI message catalogs.
package i18n

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	platformi18n "github.com/louisbranch/mythic.nexus/internal/platform/i18n"
	"github.com/louisbranch/mythic.nexus/internal/platform/i18n/catalog"
	"github.com/louisbranch/mythic.nexus/internal/services/web/routepath"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = routepath.QueryKeyLang
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "mn_lang"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register loads the embedded catalogs into the x/text message catalog once
// per process.
func Register() error {
	registerOnce.Do(func() {
		bundle, err := catalog.LoadEmbedded()
		if err != nil {
			registerErr = fmt.Errorf("load message catalogs: %w", err)
			return
		}
		if err := bundle.Register(); err != nil {
			registerErr = fmt.Errorf("register message catalogs: %w", err)
		}
	})
	return registerErr
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}

	return platformi18n.DefaultTag(), false
}

// ResolveLocalizer returns a message printer for the request language.
func ResolveLocalizer(r *http.Request) (*message.Printer, language.Tag) {
	tag, _ := ResolveTag(r)
	return message.NewPrinter(tag), tag
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// PersistLanguage stores an explicit ?lang= choice in a cookie so later
// requests keep the language without carrying the parameter.
func PersistLanguage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tag, persist := ResolveTag(r); persist {
				SetLanguageCookie(w, tag)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LanguageURL returns the current path and query with lang set to tag.
func LanguageURL(path, rawQuery string, tag language.Tag) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(LangParam, tag.String())
	if strings.TrimSpace(path) == "" {
		path = routepath.Root
	}
	return path + "?" + values.Encode()
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	URL    string
	Active bool
}

// LanguageOptions lists every supported language with a switch URL for r.
func LanguageOptions(r *http.Request, active language.Tag) []LanguageOption {
	path, rawQuery := routepath.Root, ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			URL:    LanguageURL(path, rawQuery, tag),
			Active: tag.String() == active.String(),
		})
	}
	return options
}
