package templates

import (
	"strconv"

	"github.com/a-h/templ"
)

// Guides renders the strategy-guide accordion; only the active entry shows
// its summary and steps.
func Guides(view GuidesView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="guides"`)
		h.attr("id", GuidesID(view.CharacterID))
		h.raw("><h3>")
		h.text(T(loc, "showcase.guides.title"))
		h.raw("</h3>")
		if len(view.Items) == 0 {
			h.raw(`<p class="muted">`)
			h.text(T(loc, "showcase.guides.empty"))
			h.raw("</p></section>")
			return
		}
		for idx, item := range view.Items {
			panelID := view.CharacterID + "-guide-" + strconv.Itoa(idx)
			h.raw("<div")
			h.attr("class", "guide")
			h.attr("data-active", strconv.FormatBool(item.Active))
			h.raw(">")
			active := item.Active
			h.link(item.Toggle, "guide-toggle", &active, func() {
				h.raw("<span>")
				h.text(item.Guide.Title)
				h.raw("</span>")
			})
			if item.Active {
				h.raw("<div")
				h.attr("id", panelID)
				h.raw(` class="guide-panel"><p>`)
				h.text(item.Guide.Summary)
				h.raw("</p><ol>")
				for _, step := range item.Guide.Steps {
					h.raw("<li>")
					h.text(step)
					h.raw("</li>")
				}
				h.raw("</ol></div>")
			}
			h.raw("</div>")
		}
		h.raw("</section>")
	})
}
