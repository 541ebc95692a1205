package middleware

import (
	"context"
	"net/http"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/auth"
)

type contextKey string

const (
	steamIDContextKey contextKey = "steamID"
)

// GetSteamID retrieves the authenticated SteamID from the request context.
// Returns the empty SteamID if the visitor is not signed in.
func GetSteamID(ctx context.Context) model.SteamID {
	steamID, _ := ctx.Value(steamIDContextKey).(model.SteamID)
	return steamID
}

// Auth returns middleware that requires a signed-in account.
// Redirects to the home page if not authenticated.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			steamID := steamIDFromSession(r, authService)
			if steamID == "" {
				// Store original URL to redirect back after auth
				redirectURL := "/?next=" + r.URL.Path
				http.Redirect(w, r, redirectURL, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), steamIDContextKey, steamID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that attempts authentication but doesn't require it.
// Sets the SteamID in context if authenticated, empty otherwise.
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			steamID := steamIDFromSession(r, authService)
			ctx := context.WithValue(r.Context(), steamIDContextKey, steamID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func steamIDFromSession(r *http.Request, authService *auth.Service) model.SteamID {
	cookie, err := r.Cookie("session")
	if err != nil {
		return ""
	}

	session, err := authService.ValidateSession(r.Context(), cookie.Value)
	if err != nil {
		return ""
	}

	return session.SteamID
}
