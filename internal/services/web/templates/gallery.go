package templates

import (
	"github.com/a-h/templ"
)

// Fan-art form field names.
const (
	FormFieldArtist   = "artist"
	FormFieldImageURL = "image_url"
	FormFieldCaption  = "caption"
)

// Gallery renders a character's fan art, newest first, with the submission
// form toggle.
func Gallery(view GalleryView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="gallery"`)
		h.attr("id", GalleryID(view.CharacterID))
		h.raw(`><div class="gallery-header"><h3>`)
		h.text(T(loc, "showcase.fan_art.title"))
		h.raw("</h3>")
		open := view.FormOpen
		h.link(view.FormToggle, "form-toggle", &open, func() {
			if view.FormOpen {
				h.text(T(loc, "showcase.fan_art.cancel"))
			} else {
				h.text(T(loc, "showcase.fan_art.open_form"))
			}
		})
		h.raw("</div>")

		if view.FormOpen {
			h.component(fanArtForm(view, loc))
		}

		if len(view.Entries) == 0 {
			h.raw(`<p class="muted">`)
			h.text(T(loc, "showcase.fan_art.empty"))
			h.raw("</p></section>")
			return
		}

		layout := "grid"
		if view.SingleColumn() {
			layout = "single"
		}
		h.raw("<div")
		h.attr("class", "gallery-items gallery-"+layout)
		h.attr("data-layout", layout)
		h.raw(">")
		for _, entry := range view.Entries {
			h.raw("<figure")
			h.attr("id", "fan-art-entry-"+entry.ID)
			h.raw(`><img loading="lazy"`)
			h.url("src", entry.ImageURL)
			h.attr("alt", entry.Caption)
			h.raw(`><figcaption><p class="artist">`)
			h.text(T(loc, "showcase.fan_art.by", entry.Artist))
			h.raw(`</p><p class="caption">`)
			h.text(entry.Caption)
			h.raw("</p></figcaption></figure>")
		}
		h.raw("</div></section>")
	})
}

func fanArtForm(view GalleryView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="fan-art-form" method="post"`)
		h.attr("action", view.FormAction)
		h.attr("hx-post", view.FormAction)
		h.attr("hx-target", Target(GalleryID(view.CharacterID)))
		h.attr("hx-swap", "outerHTML")
		h.raw(">")
		if view.Form.ErrorKey != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(T(loc, view.Form.ErrorKey))
			h.raw("</p>")
		}
		writeField(h, T(loc, "showcase.fan_art.artist_label"), "text", FormFieldArtist, view.Form.Artist, true)
		writeField(h, T(loc, "showcase.fan_art.image_label"), "url", FormFieldImageURL, view.Form.ImageURL, true)
		h.raw("<label><span>")
		h.text(T(loc, "showcase.fan_art.caption_label"))
		h.raw(`</span><textarea rows="2"`)
		h.attr("name", FormFieldCaption)
		h.raw(">")
		h.text(view.Form.Caption)
		h.raw(`</textarea></label><button type="submit">`)
		h.text(T(loc, "showcase.fan_art.submit"))
		h.raw("</button></form>")
	})
}

func writeField(h *htmlWriter, label, inputType, name, value string, required bool) {
	h.raw("<label><span>")
	h.text(label)
	h.raw("</span><input")
	h.attr("type", inputType)
	h.attr("name", name)
	h.attr("value", value)
	h.boolAttr("required", required)
	h.raw("></label>")
}
