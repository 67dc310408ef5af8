package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vivek1125/banking-transaction-service/internal/logger"
)

type contextKey string

const credentialContextKey contextKey = "bearerCredential"

// BearerAuth requires an Authorization bearer header and stashes the token in the
// request context. The token is opaque here: it is forwarded to the Account service
// unchanged and never inspected or validated by this service.
func BearerAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			token := ""
			if strings.HasPrefix(strings.ToLower(header), "bearer ") {
				token = strings.TrimSpace(header[len("bearer "):])
			}

			if token == "" {
				logger.Info("bearer auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "missing_bearer_token",
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), credentialContextKey, token)))
		})
	}
}

// CredentialFromContext returns the bearer token stashed by BearerAuth, or empty.
func CredentialFromContext(ctx context.Context) string {
	token, _ := ctx.Value(credentialContextKey).(string)
	return token
}
