package templates

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the localized title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "showcase.error.not_found_title")
	}
	return T(loc, "showcase.error.generic_title")
}

// ErrorState renders the error page body.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		body := T(loc, "showcase.error.generic_body")
		if statusCode == http.StatusNotFound {
			body = T(loc, "showcase.error.not_found_body")
		}
		h.raw(`<section class="error-state" data-status="`)
		h.text(strconv.Itoa(statusCode))
		h.raw(`"><h1>`)
		h.text(ErrorPageTitle(statusCode, loc))
		h.raw("</h1><p>")
		h.text(body)
		h.raw(`</p><a href="/">`)
		h.text(T(loc, "showcase.error.back"))
		h.raw("</a></section>")
	})
}
