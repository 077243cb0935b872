package public

import (
	"log"
	"net/http"

	"github.com/louisbranch/karta/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/karta/internal/services/web/platform/i18n"
	"github.com/louisbranch/karta/internal/services/web/platform/pagerender"
	"github.com/louisbranch/karta/internal/services/web/platform/weberror"
	"github.com/louisbranch/karta/internal/services/web/templates"
)

type handlers struct{}

func newHandlers() handlers {
	return handlers{}
}

func (handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, lang, pagerender.Page{
		Title:       templates.T(loc, "web.home.title"),
		Description: templates.T(loc, "web.meta.description"),
		Fragment:    templates.HomePage(loc),
	})
	if err != nil {
		log.Printf("render home page request_id=%s err=%v", httpx.RequestIDFrom(r), err)
	}
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePageError(w, r, http.StatusNotFound)
}
