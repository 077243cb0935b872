// Package main starts the browser-facing Karta web service.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/karta/internal/cmd/web"
	"github.com/louisbranch/karta/internal/platform/backend"
	"github.com/louisbranch/karta/internal/platform/config"
	"github.com/louisbranch/karta/internal/platform/otel"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf(config.ExitCodeConfig, "parse config: %v", err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		if backend.IsConfigError(err) || errors.Is(err, otel.ErrInvalidSampleRatio) {
			stop()
			config.Exitf(config.ExitCodeConfig, "invalid configuration: %v", err)
		}
		log.Fatalf("failed to serve: %v", err)
	}
}
