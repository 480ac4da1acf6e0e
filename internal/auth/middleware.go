// ABOUTME: HTTP middleware resolving session cookies to principals
// ABOUTME: Resolver attaches identity; RequirePrincipal gates protected routes

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hatchboard/hatchboard/internal/session"
	"github.com/hatchboard/hatchboard/internal/store"
)

// Resolver turns an incoming session cookie into a Principal on the
// request context. Requests without a valid session pass through
// unauthenticated; only RequirePrincipal rejects them.
type Resolver struct {
	codec    *CookieCodec
	sessions session.Store
	users    store.Store
	logger   *slog.Logger
}

// NewResolver creates a resolver over the given codec and stores.
func NewResolver(codec *CookieCodec, sessions session.Store, users store.Store) *Resolver {
	return &Resolver{
		codec:    codec,
		sessions: sessions,
		users:    users,
		logger:   slog.Default().With("component", "auth"),
	}
}

// Middleware resolves the session cookie, if any, and attaches the
// Principal to the request context. Every failure mode downgrades to an
// unauthenticated request; infrastructure errors are logged.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		cookie, err := req.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, req)
			return
		}

		sessionID, err := r.codec.Decode(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, req)
			return
		}

		userID, err := r.sessions.Read(req.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				r.logger.Error("reading session", "error", err)
			}
			next.ServeHTTP(w, req)
			return
		}

		user, err := r.users.GetUser(req.Context(), userID)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				r.logger.Error("loading session user", "error", err, "user_id", userID)
			}
			next.ServeHTTP(w, req)
			return
		}

		ctx := WithPrincipal(req.Context(), PrincipalFromUser(user))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// RequirePrincipal rejects unauthenticated requests with a 401 JSON
// body before they reach the handler.
func RequirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if FromContext(req.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, req)
	})
}
