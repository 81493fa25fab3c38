package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the anonymous session token that
// flash messages are keyed on.
const SessionCookieName = "carebase_session"

type contextKey string

const sessionTokenKey contextKey = "session_token"

// EnsureSession guarantees every request carries a session cookie and
// attaches the token to the request context. There is no login; the session
// exists only so status messages survive the redirect after a mutation.
func EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
			token = c.Value
		} else {
			token = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionToken returns the token attached by EnsureSession, or "" if the
// middleware did not run.
func SessionToken(r *http.Request) string {
	token, _ := r.Context().Value(sessionTokenKey).(string)
	return token
}
