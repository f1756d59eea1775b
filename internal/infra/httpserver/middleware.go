package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// AccessChecker decides whether a bearer token may use the send-email
// endpoint. Implemented by the rights service client.
type AccessChecker interface {
	HasAccess(ctx context.Context, token string) bool
}

// Middleware type - function that wraps http.HandlerFunc
type Middleware func(http.HandlerFunc) http.HandlerFunc

// MiddlewareFunc type - function that wraps http.Handler
type MiddlewareFunc func(http.Handler) http.Handler

// RequireAccess extracts the bearer token and checks it against the rights
// service: 401 without a token, 403 when the check fails.
func RequireAccess(access AccessChecker, logger *logrus.Logger) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !access.HasAccess(r.Context(), token) {
				logger.Warn("Access check denied for send-email request.")
				writeJSONError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

// CORS restricts cross-origin requests to the configured origins, GET/POST
// methods and Content-Type/Authorization headers.
func CORS(allowedOrigins []string) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if allowed == origin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
					break
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
