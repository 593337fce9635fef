package templates

import (
	"github.com/a-h/templ"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig swaps 400 responses so rejected fan-art forms re-render in place.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"400","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

var languageLabelKeys = map[string]string{
	"en-US": "showcase.nav.lang_en",
	"pt-BR": "showcase.nav.lang_pt_br",
}

// Layout renders the full document around the children in context.
func Layout(view LayoutView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		children := templ.GetChildren(h.ctx)
		h.ctx = templ.ClearChildren(h.ctx)

		h.raw("<!doctype html><html")
		h.attr("lang", view.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(view.Title)
		h.raw("</title>")
		if view.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", view.Description)
			h.raw(">")
		}
		h.raw(`<meta name="htmx-config"`)
		h.attr("content", htmxConfig)
		h.raw(`><link rel="stylesheet" href="/static/showcase.css"><script defer`)
		h.attr("src", htmxScript)
		h.raw(`></script></head><body class="night"><div class="backdrop" aria-hidden="true"></div>`)

		h.raw(`<nav class="language-switcher"`)
		h.attr("aria-label", T(loc, "showcase.nav.language"))
		h.raw(">")
		for _, option := range view.Languages {
			label := option.Tag
			if key, ok := languageLabelKeys[option.Tag]; ok {
				label = T(loc, key)
			}
			h.raw("<a")
			h.url("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.raw(` class="active" aria-current="true"`)
			}
			h.raw(">")
			h.text(label)
			h.raw("</a>")
		}
		h.raw(`</nav><main id="main" class="shell">`)
		if view.Notice != nil && view.Notice.Message != "" {
			h.raw(`<p`)
			h.attr("class", "flash flash-"+view.Notice.Kind)
			h.raw(` role="status">`)
			h.text(view.Notice.Message)
			h.raw("</p>")
		}
		h.component(children)
		h.raw("</main></body></html>")
	})
}
