package middleware

import (
	"crypto/subtle"
	"net/http"
)

// apiKeyHeader carries the client key on write-protected endpoints.
const apiKeyHeader = "X-API-KEY"

// WriteProtect returns middleware requiring a valid API key for
// mutating methods (POST, PUT, PATCH, DELETE). Read methods always
// pass. With no keys configured, protection is disabled.
func WriteProtect(keys []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(keys) == 0 || !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(apiKeyHeader)
			for _, key := range keys {
				if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "invalid or missing API key", http.StatusUnauthorized)
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
