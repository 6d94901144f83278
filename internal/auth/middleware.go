package auth

import (
	"errors"
	"net/http"
	"strings"

	"netsum/internal/config"
)

// RequireAuth guards a handler with bearer-token validation. When auth
// is not configured the handler is open; an explicitly configured
// deployment rejects missing or invalid tokens.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !config.AuthEnabled() {
			next.ServeHTTP(w, r)
			return
		}

		if _, err := extractClaims(r); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func extractClaims(r *http.Request) (map[string]interface{}, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return nil, errors.New("malformed Authorization header")
	}

	return ValidateJWT(token)
}
