package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tenantly/noteboard/internal/auth"
	"github.com/tenantly/noteboard/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext returns the verified identity attached by BearerAuth,
// or nil when the request did not pass through it.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityContextKey).(*domain.Identity)
	return id
}

// BearerAuth verifies the Authorization bearer token and attaches the
// decoded identity to the request context. Every failure mode is a plain
// 401; the response does not say whether the token was absent, malformed,
// tampered with, or expired.
func BearerAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "authentication required: no token provided")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "authentication failed: invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, &identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the identity's role. Must be mounted after
// BearerAuth.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if identity == nil {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if identity.Role != role {
				writeError(w, http.StatusForbidden, "forbidden: this action requires the '"+string(role)+"' role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
