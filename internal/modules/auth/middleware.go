package auth

import (
	"net/http"
	"strings"

	"github.com/foodsafe/foodsafe-backend/internal/api"
)

// RequireBearer rejects requests that do not carry a valid bearer token.
func RequireBearer(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				api.Fail(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if _, _, err := service.VerifyToken(strings.TrimPrefix(header, "Bearer ")); err != nil {
				api.Fail(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
