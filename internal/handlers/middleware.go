package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"hanguldrill/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const PlayerContextKey ContextKey = "player"

const playerCookieName = "player_token"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessionSecret   string
	sessionDuration time.Duration
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessionSecret string, sessionDuration time.Duration) *Middleware {
	return &Middleware{
		sessionSecret:   sessionSecret,
		sessionDuration: sessionDuration,
	}
}

// WithPlayer attaches a player id to the request, minting and setting
// a signed cookie when none is present or the existing one is invalid.
// There is no login: the cookie is identity enough for a single-player
// practice app.
func (m *Middleware) WithPlayer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := ""
		if cookie, err := r.Cookie(playerCookieName); err == nil {
			if id, err := security.ParsePlayerToken(m.sessionSecret, cookie.Value); err == nil {
				playerID = id
			}
		}

		if playerID == "" {
			playerID = security.NewPlayerID()
			token, err := security.SignPlayerToken(m.sessionSecret, playerID, m.sessionDuration)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Internal server error", "Failed to sign player token", err)
				return
			}
			expires := time.Now().Add(m.sessionDuration)
			http.SetCookie(w, security.CreatePlayerCookie(r, playerCookieName, token, expires))
		}

		ctx := context.WithValue(r.Context(), PlayerContextKey, playerID)
		next(w, r.WithContext(ctx))
	}
}

// GetPlayerFromContext retrieves the player id from the request context.
func GetPlayerFromContext(ctx context.Context) string {
	playerID, _ := ctx.Value(PlayerContextKey).(string)
	return playerID
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
