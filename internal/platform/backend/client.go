// Package backend constructs the shared client handle for the hosted
// data/auth platform (a Supabase-style REST and auth gateway).
//
// The handle is built once at startup from the public service URL and the
// anonymous access key, and is read-only afterwards so it can be shared by
// every request handler.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/karta/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	restPathPrefix = "/rest/v1/"
	authPathPrefix = "/auth/v1/"
	healthPath     = "health"

	instrumentationName = "github.com/louisbranch/karta/internal/platform/backend"
)

var (
	// ErrMissingURL reports an empty service URL.
	ErrMissingURL = errors.New("backend service url is required")
	// ErrInvalidURL reports a service URL that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("backend service url must be an absolute http or https url")
	// ErrMissingAnonKey reports an empty anonymous access key.
	ErrMissingAnonKey = errors.New("backend anon key is required")
	// ErrUnavailable reports that the platform could not be reached or
	// answered with a failure status.
	ErrUnavailable = errors.New("backend unavailable")
)

// IsConfigError reports whether err comes from invalid client configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingURL) || errors.Is(err, ErrInvalidURL) || errors.Is(err, ErrMissingAnonKey)
}

// Config holds the two deployment-supplied credentials.
type Config struct {
	URL     string
	AnonKey string
}

// Option customizes client construction.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for platform calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// Client is the process-wide handle for the hosted platform.
type Client struct {
	baseURL    *url.URL
	anonKey    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New validates cfg and builds a client handle.
func New(cfg Config, opts ...Option) (*Client, error) {
	rawURL := strings.TrimSpace(cfg.URL)
	if rawURL == "" {
		return nil, ErrMissingURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""

	anonKey := strings.TrimSpace(cfg.AnonKey)
	if anonKey == "" {
		return nil, ErrMissingAnonKey
	}

	c := &Client{
		baseURL: parsed,
		anonKey: anonKey,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeouts.BackendRequest,
		},
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// URL returns the normalized service URL.
func (c *Client) URL() string {
	return c.baseURL.String()
}

// RESTURL returns the data API URL for a table or view.
func (c *Client) RESTURL(table string) string {
	return c.resolve(restPathPrefix + strings.Trim(strings.TrimSpace(table), "/"))
}

// AuthURL returns the auth API URL for the given endpoint path.
func (c *Client) AuthURL(endpoint string) string {
	return c.resolve(authPathPrefix + strings.TrimLeft(strings.TrimSpace(endpoint), "/"))
}

func (c *Client) resolve(path string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	return u.String()
}

// NewRequest builds a request carrying the anonymous credentials.
func (c *Client) NewRequest(ctx context.Context, method string, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build backend request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Do sends req with the client's transport.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// Health checks that the platform's auth gateway answers. Transport failures
// and non-2xx statuses are reported as ErrUnavailable.
func (c *Client) Health(ctx context.Context) (err error) {
	ctx, span := c.tracer.Start(ctx, "backend.Health", trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := c.NewRequest(ctx, http.MethodGet, c.AuthURL(healthPath), nil)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: health returned %s", ErrUnavailable, resp.Status)
	}
	return nil
}
