// Package public serves the browser-facing pages: the home page, liveness
// check and the not-found fallback.
package public

import (
	"net/http"

	module "github.com/louisbranch/karta/internal/services/web/module"
	"github.com/louisbranch/karta/internal/services/web/routepath"
)

// Module provides unauthenticated page routes.
type Module struct{}

// New returns the public pages module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "public"
}

// Mount wires public routes under the root prefix.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers())
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
