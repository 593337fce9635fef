// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/mythic.nexus/internal/platform/errors"
	webi18n "github.com/louisbranch/mythic.nexus/internal/services/web/platform/i18n"
	"github.com/louisbranch/mythic.nexus/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/mythic.nexus/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
