package security

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// NewPlayerID creates a new UUID identifying a practicing player.
func NewPlayerID() string {
	return uuid.New().String()
}

// IsSecureRequest determines if the request is over HTTPS, directly or
// behind a reverse proxy.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	if r.URL.Scheme == "https" {
		return true
	}
	return false
}

// CreatePlayerCookie creates the player identity cookie with proper
// security flags. The Secure flag follows the request scheme.
func CreatePlayerCookie(r *http.Request, name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}
