// Package httpx holds the middleware and response writers shared by the
// web modules.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
)

const (
	htmxHeader      = "HX-Request"
	requestIDHeader = "X-Request-ID"
	missingValue    = "-"
)

var errNilWriter = errors.New("response writer is required")

type requestIDKey struct{}

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// MethodNotAllowed answers 405 and advertises allow.
func MethodNotAllowed(allow string) http.HandlerFunc {
	allow = strings.TrimSpace(allow)
	return func(w http.ResponseWriter, _ *http.Request) {
		if w == nil {
			return
		}
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Chain wraps handler so the first middleware runs first. Nil entries are
// skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		if mw := middleware[i]; mw != nil {
			handler = mw(handler)
		}
	}
	return handler
}

// RequestID keeps an inbound X-Request-ID or mints a UUID, stores it on the
// request context and echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFrom returns the correlation id for r, or "-" when none is known.
func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return missingValue
	}
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	if id := strings.TrimSpace(r.Header.Get(requestIDHeader)); id != "" {
		return id
	}
	return missingValue
}

// RecoverPanic logs a panic with its stack and answers 500.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				method, path := missingValue, missingValue
				if r != nil {
					method, path = r.Method, r.URL.Path
				}
				id := RequestIDFrom(r)
				if id == missingValue && w != nil {
					if header := strings.TrimSpace(w.Header().Get(requestIDHeader)); header != "" {
						id = header
					}
				}
				log.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					method, path, id, recovered, strings.TrimSpace(string(debug.Stack())))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// WriteJSON encodes payload before touching w, so an encoding failure
// leaves the response unwritten.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return errNilWriter
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode json response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WriteHTML writes payload as text/html.
func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return errNilWriter
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}

// RequestContext returns the request context, or Background for a nil request.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether r was issued by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(htmxHeader) == "true"
}
