// Package session holds the desk session cookie settings shared by the
// login handlers and the authentication middleware.
package session

import (
	"net/http"
	"time"
)

// CookieName is the desk session cookie.
const CookieName = "X-Session-Token"

// TTL is how long a desk login stays valid without re-authenticating.
const TTL = 12 * time.Hour

// SessionCookie builds the session cookie. A negative maxAge clears it on
// logout.
func SessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

// DefaultExpiry returns the expiry timestamp for a session created now.
func DefaultExpiry() time.Time {
	return time.Now().Add(TTL)
}
