package api

import (
	"context"
	"log"
	"net/http"

	"github.com/louisbranch/karta/internal/platform/timeouts"
	module "github.com/louisbranch/karta/internal/services/web/module"
	apperrors "github.com/louisbranch/karta/internal/services/web/platform/errors"
	"github.com/louisbranch/karta/internal/services/web/platform/httpx"
	"github.com/louisbranch/karta/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/karta/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/karta/internal/services/web/platform/weberror"
)

const (
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
	backendUnavailable   = "unavailable"
)

type logoutResponse struct {
	Success bool `json:"success"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type handlers struct {
	backend module.BackendHealth
	policy  requestmeta.SchemePolicy
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{backend: deps.Backend, policy: deps.RequestMeta}
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessioncookie.Read(r); ok {
		log.Printf("logout clearing session cookie request_id=%s", httpx.RequestIDFrom(r))
	}
	sessioncookie.ClearWithPolicy(w, r, h.policy)
	h.writeJSON(w, r, http.StatusOK, logoutResponse{Success: true})
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.checkBackend(httpx.RequestContext(r)); err != nil {
		log.Printf("backend health check failed kind=%s request_id=%s err=%v", apperrors.KindOf(err), httpx.RequestIDFrom(r), err)
		h.writeJSON(w, r, apperrors.HTTPStatus(err), healthResponse{
			Status:  healthStatusDegraded,
			Backend: backendUnavailable,
		})
		return
	}
	h.writeJSON(w, r, http.StatusOK, healthResponse{Status: healthStatusOK, Backend: healthStatusOK})
}

// checkBackend pings the backend within the shared request budget.
func (h handlers) checkBackend(ctx context.Context) error {
	if h.backend == nil {
		return apperrors.EK(apperrors.KindUnavailable, "web.error.unavailable.body", "backend client is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.BackendRequest)
	defer cancel()
	if err := h.backend.Health(ctx); err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "web.error.unavailable.body", err)
	}
	return nil
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteJSONError(w, r, apperrors.EK(apperrors.KindNotFound, "web.error.not_found.title", "api route not found"))
}

func (handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if err := httpx.WriteJSON(w, status, payload); err != nil {
		log.Printf("write json response status=%d request_id=%s err=%v", status, httpx.RequestIDFrom(r), err)
	}
}
