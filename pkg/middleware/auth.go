package middleware

import (
	"errors"
	"net/http"
	"strings"

	"cinema-tickets/pkg/identity"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token through the identity
// collaborator and stores the user ID in the request context.
func Authenticate(resolver identity.Resolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, err := resolver.Resolve(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, identity.ErrUnknownToken) {
					logger.Warn("Invalid or expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Invalid or expired token")
					return
				}
				logger.Error("Failed to resolve token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
