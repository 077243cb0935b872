// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/karta/internal/services/web/platform/errors"
	"github.com/louisbranch/karta/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/karta/internal/services/web/platform/i18n"
	"github.com/louisbranch/karta/internal/services/web/platform/pagerender"
	"github.com/louisbranch/karta/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WritePageError writes a localized error page for full-page and HTMX requests.
func WritePageError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, lang, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, loc),
	})
	if err != nil {
		log.Printf("render error page status=%d request_id=%s err=%v", statusCode, httpx.RequestIDFrom(r), err)
	}
}

// WriteJSONError writes a JSON error body, localizing the message when the
// error carries a localization key.
func WriteJSONError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	message := http.StatusText(statusCode)
	if key := apperrors.LocalizationKey(err); key != "" {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		message = loc.Sprintf(key)
	}
	if writeErr := httpx.WriteJSON(w, statusCode, map[string]string{"error": message}); writeErr != nil {
		log.Printf("write json error status=%d request_id=%s err=%v", statusCode, httpx.RequestIDFrom(r), writeErr)
	}
}
