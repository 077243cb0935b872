// Package api serves the JSON endpoints under /api/.
package api

import (
	"net/http"

	module "github.com/louisbranch/karta/internal/services/web/module"
	"github.com/louisbranch/karta/internal/services/web/platform/httpx"
	"github.com/louisbranch/karta/internal/services/web/routepath"
)

// Module provides the session and readiness API routes.
type Module struct{}

// New returns the API module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "api"
}

// Mount wires API routes under the /api/ prefix.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.APILogout, h.handleLogout)
	mux.HandleFunc(routepath.APILogout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.APIHealth, h.handleHealth)
	mux.HandleFunc(routepath.APIHealth, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.APIPrefix+"{rest...}", h.handleNotFound)
}
