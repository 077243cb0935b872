// Package requestmeta resolves the scheme a browser used to reach the
// service, optionally through a TLS-terminating proxy.
package requestmeta

import (
	"net/http"
	"strings"
)

const forwardedProtoHeader = "X-Forwarded-Proto"

// SchemePolicy selects which request signals count toward the scheme.
// X-Forwarded-Proto is read only when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPSWithPolicy reports whether r arrived over HTTPS under policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme returns "http" or "https" for r, or "" for a nil request.
// Signals are checked in order: trusted proxy header, absolute URL, TLS.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	candidates := make([]string, 0, 2)
	if policy.TrustForwardedProto {
		candidates = append(candidates, r.Header.Get(forwardedProtoHeader))
	}
	if r.URL != nil {
		candidates = append(candidates, r.URL.Scheme)
	}
	for _, candidate := range candidates {
		if scheme, ok := normalizeScheme(candidate); ok {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func normalizeScheme(raw string) (string, bool) {
	switch scheme := strings.ToLower(strings.TrimSpace(raw)); scheme {
	case "http", "https":
		return scheme, true
	default:
		return "", false
	}
}
