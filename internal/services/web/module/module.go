// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"

	"github.com/louisbranch/karta/internal/services/web/platform/requestmeta"
)

// BackendHealth reports whether the hosted backend platform is reachable.
type BackendHealth interface {
	Health(ctx context.Context) error
}

// Dependencies carries the shared collaborators modules may use.
type Dependencies struct {
	Backend     BackendHealth
	RequestMeta requestmeta.SchemePolicy
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
