package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// Middleware gates a route behind either an admin bearer token or the
// shared API key passed as ?key= (the form external trigger services
// use). The outcome is pass or fail; there are no roles.
func Middleware(service Service, apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key := r.URL.Query().Get("key"); key != "" && apiKey != "" {
				if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}
			if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				if service.Verify(token) == nil {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
}
