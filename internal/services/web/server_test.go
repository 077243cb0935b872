package web

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/karta/internal/services/web/platform/sessioncookie"
)

type healthStub struct {
	err error
}

func (h healthStub) Health(context.Context) error {
	return h.err
}

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestNewHandlerServesHomePage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Waiting for database...") {
		t.Fatalf("expected home page body, got %q", rr.Body.String())
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestNewHandlerServesStaticStylesheet(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), ".animate-pulse") {
		t.Fatalf("expected stylesheet content")
	}
}

func TestNewHandlerRoutesLogoutThroughAPIModule(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "abc"})
	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"success":true}` {
		t.Fatalf("body = %q", got)
	}
	if got := rr.Header().Get("Set-Cookie"); !strings.Contains(got, sessioncookie.Name+"=") || !strings.Contains(got, "Max-Age=0") {
		t.Fatalf("Set-Cookie = %q, want expired %s", got, sessioncookie.Name)
	}
}

func TestNewHandlerHealthUsesBackend(t *testing.T) {
	t.Parallel()

	ok := httptest.NewRecorder()
	newTestHandler(t, Config{Backend: healthStub{}}).ServeHTTP(ok, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if ok.Code != http.StatusOK {
		t.Fatalf("healthy status = %d, want %d", ok.Code, http.StatusOK)
	}

	down := httptest.NewRecorder()
	newTestHandler(t, Config{Backend: healthStub{err: errors.New("down")}}).ServeHTTP(down, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if down.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded status = %d, want %d", down.Code, http.StatusServiceUnavailable)
	}
}

func TestNewHandlerRecoversUnknownPaths(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWithMiddlewareLogsPanicUnderReturnedRequestID(t *testing.T) {
	var buffer bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&buffer)
	t.Cleanup(func() { log.SetOutput(previous) })

	h := withMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), log.Default())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	id := rr.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatalf("expected generated request id header")
	}
	logged := buffer.String()
	if !strings.Contains(logged, "panic recovered method=GET path=/x request_id="+id+" ") {
		t.Fatalf("panic line missing request id %q: %q", id, logged)
	}
	if !strings.Contains(logged, "http request method=GET path=/x status=500") {
		t.Fatalf("expected request line with status 500: %q", logged)
	}
	if !strings.Contains(logged, "request_id="+id+" trace_id=") {
		t.Fatalf("request line missing request id %q: %q", id, logged)
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatalf("expected error for blank http address")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("ListenAndServe did not stop after cancel")
	}
}

func TestListenAndServeRejectsNilServer(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatalf("expected error for nil server")
	}
	server.Close()
}
