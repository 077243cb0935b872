// Package pagerender centralizes page rendering for full-page and HTMX flows.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/karta/internal/services/web/platform/httpx"
	"github.com/louisbranch/karta/internal/services/web/templates"
)

// Page describes one page response.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Fragment    templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes page wrapped in the root layout, or only its fragment
// when the request came from HTMX.
func WritePage(w http.ResponseWriter, r *http.Request, lang string, page Page) error {
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
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		return fragment.Render(ctx, w)
	}
	layout := templates.Layout(templates.LayoutOptions{
		Title:       page.Title,
		Description: page.Description,
		Lang:        lang,
	})
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}
