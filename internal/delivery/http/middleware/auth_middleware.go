package middleware

import (
	"net/http"
	"strings"

	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/token"
)

type AuthMiddleware struct {
	tokenService *token.Service
}

func NewAuthMiddleware(tokenService *token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate enforces a Bearer token when a secret is configured and is a
// no-op otherwise.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.tokenService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		if _, err := m.tokenService.Validate(parts[1]); err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
