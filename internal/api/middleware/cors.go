package middleware

import (
	"net/http"

	"github.com/userbinhq/userbin/internal/api/response"
)

// CORS creates middleware that emits permissive CORS headers on every
// response and answers preflight requests with 204 and no body.
//
// The allowed origin is configurable; the wildcard default means any browser
// frontend can call the API. Access-Control-Allow-Methods is set per route by
// mux.CORSMethodMiddleware, so this middleware only adds the origin and
// header allowances.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				response.NoContent(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
