package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mohammad516/lc-website/internal/auth"
	"github.com/mohammad516/lc-website/internal/utils"
)

type contextKey string

const ClaimsKey contextKey = "jwtClaims"

// ClaimsFromContext returns the admin claims set by AdminOnly.
func ClaimsFromContext(ctx context.Context) (*auth.CustomClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.CustomClaims)
	return claims, ok
}

// AdminOnly rejects any request without a valid admin bearer token.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.WriteJSONError(w, "missing bearer token", "", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseJWT(tokenStr)
		if err != nil {
			utils.WriteJSONError(w, "invalid or expired token", "", http.StatusUnauthorized)
			return
		}

		if claims.Role != auth.RoleAdmin {
			utils.WriteJSONError(w, "admin access required", "", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
