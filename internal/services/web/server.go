// Package web hosts the browser-facing Karta service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/karta/internal/platform/timeouts"
	webapp "github.com/louisbranch/karta/internal/services/web/app"
	module "github.com/louisbranch/karta/internal/services/web/module"
	"github.com/louisbranch/karta/internal/services/web/modules"
	"github.com/louisbranch/karta/internal/services/web/platform/httpx"
	"github.com/louisbranch/karta/internal/services/web/platform/observability"
	"github.com/louisbranch/karta/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/karta/internal/services/web/routepath"
	webstatic "github.com/louisbranch/karta/internal/services/web/static"
)

const tracingService = "karta-web"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr    string
	Backend     module.BackendHealth
	RequestMeta requestmeta.SchemePolicy
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	h, err := webapp.Compose(webapp.ComposeInput{
		Dependencies: module.Dependencies{
			Backend:     cfg.Backend,
			RequestMeta: cfg.RequestMeta,
		},
		Modules: modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return withMiddleware(rootMux, log.Default()), nil
}

// withMiddleware wraps h so the request id is assigned first and panics are
// recovered innermost, letting both the panic line and the request line carry
// that id and the logged status.
func withMiddleware(h http.Handler, logger *log.Logger) http.Handler {
	return httpx.Chain(h,
		httpx.RequestID(),
		observability.Tracing(tracingService),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(),
	)
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
//
// On cancellation it drains in-flight requests within timeouts.Shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the HTTP server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
