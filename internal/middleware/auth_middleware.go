package middleware

import (
	"context"
	"net/http"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/auth"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
)

type contextKey string

// UserKeyContextKey carries the authenticated user's username-or-email
// through the request context.
const UserKeyContextKey contextKey = "userKey"

// LearnerAuth requires a valid learner session cookie.
func LearnerAuth(a *auth.Auth, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("token")
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := a.ValidateJWT(cookie.Value)
		if err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		// Exact match against the closed role set: an unrecognized role
		// claim is rejected the same way a wrong one is.
		if role := models.Role(claims.Role); !role.Valid() || role != models.RoleLearner {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), UserKeyContextKey, claims.UserKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
