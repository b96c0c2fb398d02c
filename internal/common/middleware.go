package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

// CtxUserID carries the authenticated user id through the request context.
const CtxUserID contextKey = "user_id"

// Routes that skip the token check: registration (there is no token yet)
// and the read-only surface.
var publicRoutes = map[string]bool{
	"POST /v1/regist": true,
}

// AuthMiddleware lets reads through untouched and requires a valid Bearer
// token on every mutating route except registration. Authorization stays in
// the services; this only establishes who is calling.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || publicRoutes[r.Method+" "+r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			http.Error(w, "invalid auth header", http.StatusUnauthorized)
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
