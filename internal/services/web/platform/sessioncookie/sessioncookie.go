// Package sessioncookie owns the admin session cookie. This service never
// issues the cookie; it only reads it for logging and expires it on logout.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/louisbranch/karta/internal/services/web/platform/requestmeta"
)

// Name is the admin session cookie name.
const Name = "admin_session"

// Read returns the trimmed cookie value. Blank values count as absent.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	return value, value != ""
}

// ClearWithPolicy expires the cookie, resolving Secure through policy.
func ClearWithPolicy(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, expired(requestmeta.IsHTTPSWithPolicy(r, policy)))
}

// expired builds a deletion cookie; MaxAge -1 is written as Max-Age=0.
func expired(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
