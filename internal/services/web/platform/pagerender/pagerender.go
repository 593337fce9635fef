// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/flash"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/mythic.nexus/internal/services/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	// Fragment is the main content of a full-page render.
	Fragment templ.Component
	// Partial is the HTMX swap payload; Fragment is used when nil.
	Partial templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes a full document, or only the partial for HTMX requests.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		partial := page.Partial
		if partial == nil {
			partial = fragment
		}
		w.WriteHeader(statusCode)
		return partial.Render(ctx, w)
	}

	loc, lang := webi18n.ResolveLocalizer(r)
	options := webi18n.LanguageOptions(r, lang)
	links := make([]webtemplates.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, webtemplates.LanguageLink{Tag: option.Tag, URL: option.URL, Active: option.Active})
	}
	title := page.Title
	if title == "" {
		title = webtemplates.T(loc, "showcase.page.title")
	}
	description := page.Description
	if description == "" {
		description = webtemplates.T(loc, "showcase.page.description")
	}

	var notice *webtemplates.Notice
	if pending, ok := flash.ReadAndClear(w, r); ok {
		notice = &webtemplates.Notice{Kind: string(pending.Kind), Message: webtemplates.T(loc, pending.Key)}
	}

	w.WriteHeader(statusCode)
	layout := webtemplates.Layout(webtemplates.LayoutView{
		Lang:        lang.String(),
		Title:       title,
		Description: description,
		Languages:   links,
		Notice:      notice,
	}, loc)
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}
