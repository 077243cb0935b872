// Package errors defines the typed failures web handlers map to HTTP
// responses, optionally carrying a catalog key for localized copy.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies a failure for HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

var statusByKind = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
	KindUnavailable:  http.StatusServiceUnavailable,
}

// Error is a typed web failure. Key, when set, names a catalog message
// shown to users instead of Message.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e Error) Unwrap() error {
	return e.Err
}

// EK builds an Error with a catalog key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap builds an Error around cause; cause stays reachable via errors.Is.
func Wrap(kind Kind, key string, cause error) error {
	wrapped := Error{Kind: kind, Key: strings.TrimSpace(key), Err: cause}
	if cause != nil {
		wrapped.Message = cause.Error()
	}
	return wrapped
}

// KindOf returns the Kind of the first Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// LocalizationKey returns the catalog key carried by err, if any.
func LocalizationKey(err error) string {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps err to a status code: 200 for nil, 500 for untyped or
// unknown kinds.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := statusByKind[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
