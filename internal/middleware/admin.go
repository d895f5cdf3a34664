package middleware

import (
	"net/http"
)

// AdminAuth gates a route group behind the shared admin token. The token may
// arrive in the x-admin-token header or the admin_token query parameter; a
// missing or mismatched token yields an empty unauthorized response.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("x-admin-token")
			if got == "" {
				got = r.URL.Query().Get("admin_token")
			}

			if got == "" || got != token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
