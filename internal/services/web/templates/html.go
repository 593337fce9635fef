package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies read as
// straight-line markup.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes an href/src style attribute, neutralising unsafe schemes.
func (h *htmlWriter) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) boolAttr(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// link writes an anchor that works as a plain link and, with HTMX loaded,
// swaps Target with the HXGet response and pushes Href to history.
func (h *htmlWriter) link(link LinkView, class string, expanded *bool, body func()) {
	h.raw("<a")
	h.url("href", link.Href)
	if link.HXGet != "" && link.Target != "" {
		h.attr("hx-get", link.HXGet)
		h.attr("hx-target", link.Target)
		h.attr("hx-swap", "outerHTML")
		h.attr("hx-push-url", link.Href)
	}
	if class != "" {
		h.attr("class", class)
	}
	if expanded != nil {
		if *expanded {
			h.attr("aria-expanded", "true")
		} else {
			h.attr("aria-expanded", "false")
		}
	}
	h.raw(">")
	body()
	h.raw("</a>")
}

func (h *htmlWriter) done() error {
	return h.err
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		fn(h)
		return h.done()
	})
}
