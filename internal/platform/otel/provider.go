// Package otel configures OpenTelemetry tracing for Karta processes.
package otel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/louisbranch/karta/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const serviceNamePrefix = "karta-"

// Config holds tracing settings read from the environment.
type Config struct {
	Endpoint    string  `env:"KARTA_OTEL_ENDPOINT"`
	Enabled     string  `env:"KARTA_OTEL_ENABLED"`
	SampleRatio float64 `env:"KARTA_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// active reports whether spans should be exported. An endpoint is required
// and KARTA_OTEL_ENABLED=false switches export off.
func (c Config) active() bool {
	if strings.EqualFold(strings.TrimSpace(c.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(c.Endpoint) != ""
}

// ErrInvalidSampleRatio reports a KARTA_OTEL_SAMPLE_RATIO outside [0, 1].
var ErrInvalidSampleRatio = errors.New("otel sample ratio must be between 0 and 1")

func (c Config) validate() error {
	if c.SampleRatio < 0 || c.SampleRatio > 1 || math.IsNaN(c.SampleRatio) {
		return fmt.Errorf("%w: got %v", ErrInvalidSampleRatio, c.SampleRatio)
	}
	return nil
}

// sampler honors the parent decision; root spans follow SampleRatio,
// where 0 samples nothing and 1 samples everything.
func (c Config) sampler() sdktrace.Sampler {
	switch {
	case c.SampleRatio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	case c.SampleRatio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
}

// Setup reads Config from the environment and calls SetupWithConfig.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return noopShutdown, fmt.Errorf("otel config: %w", err)
	}
	return SetupWithConfig(ctx, serviceName, cfg)
}

// SetupWithConfig registers a global tracer provider exporting over
// OTLP/HTTP. An out-of-range sample ratio is rejected even when tracing is
// off. When cfg is inactive nothing is registered and the returned
// shutdown is a no-op. Callers defer the shutdown to flush pending spans.
func SetupWithConfig(ctx context.Context, serviceName string, cfg Config) (func(context.Context) error, error) {
	if err := cfg.validate(); err != nil {
		return noopShutdown, err
	}
	if !cfg.active() {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)))
	if err != nil {
		return noopShutdown, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceNamePrefix+strings.TrimSpace(serviceName)),
	))
	if err != nil {
		return noopShutdown, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(cfg.sampler()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

func noopShutdown(context.Context) error {
	return nil
}
