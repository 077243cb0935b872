// Package web parses web service flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/louisbranch/karta/internal/platform/backend"
	entrypoint "github.com/louisbranch/karta/internal/platform/cmd"
	"github.com/louisbranch/karta/internal/services/web"
	"github.com/louisbranch/karta/internal/services/web/platform/requestmeta"
)

// Fallback variable names accepted for deployments that predate the
// KARTA_ prefix.
const (
	legacyBackendURLEnv     = "NEXT_PUBLIC_SUPABASE_URL"
	legacyBackendAnonKeyEnv = "NEXT_PUBLIC_SUPABASE_ANON_KEY"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"KARTA_WEB_HTTP_ADDR" envDefault:":3000"`
	BackendURL          string `env:"KARTA_PUBLIC_SUPABASE_URL"`
	BackendAnonKey      string `env:"KARTA_PUBLIC_SUPABASE_ANON_KEY"`
	TrustForwardedProto bool   `env:"KARTA_WEB_TRUST_FORWARDED_PROTO"`
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg = applyFallbacks(cfg, os.LookupEnv)

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Hosted backend platform base URL")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when resolving request scheme")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the backend client and serves the web surface until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	client, err := backend.New(backend.Config{
		URL:     cfg.BackendURL,
		AnonKey: cfg.BackendAnonKey,
	})
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:    cfg.HTTPAddr,
			Backend:     client,
			RequestMeta: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func applyFallbacks(cfg Config, lookup EnvLookup) Config {
	cfg.BackendURL = envOrDefault(lookup, []string{legacyBackendURLEnv}, cfg.BackendURL)
	cfg.BackendAnonKey = envOrDefault(lookup, []string{legacyBackendAnonKeyEnv}, cfg.BackendAnonKey)
	return cfg
}

// envOrDefault keeps current when set, otherwise returns the first
// non-blank value found under keys.
func envOrDefault(lookup EnvLookup, keys []string, current string) string {
	if strings.TrimSpace(current) != "" || lookup == nil {
		return current
	}
	for _, key := range keys {
		value, ok := lookup(key)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return current
}
