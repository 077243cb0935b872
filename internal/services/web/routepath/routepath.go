// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strings"

const (
	Root         = "/"
	Health       = "/up"
	APIPrefix    = "/api/"
	APILogout    = "/api/logout"
	APIHealth    = "/api/health"
	StaticPrefix = "/static/"
)

// Static returns the public URL for an embedded static asset.
func Static(asset string) string {
	return StaticPrefix + strings.TrimLeft(strings.TrimSpace(asset), "/")
}

// WithLang returns path with a lang query parameter used for locale switching.
func WithLang(path string, lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return path
	}
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + "lang=" + lang
}
