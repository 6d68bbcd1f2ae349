package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	ClientID string
}

type contextKeyClientID struct{}

// ContextKeyClientID is exported for use in handlers
var ContextKeyClientID = contextKeyClientID{}

// GetClientID retrieves the authenticated client ID from the context
func GetClientID(ctx context.Context) string {
	clientID, ok := ctx.Value(ContextKeyClientID).(string)
	if !ok {
		return ""
	}
	return clientID
}

func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
				claims, err := validator.ValidateToken(token)
				if err != nil {
					ctx := r.Context()
					requestID := GetRequestID(ctx)
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", requestID,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, err = w.Write([]byte(`{"error":"unauthorized","error_description":"Invalid or expired token"}`))
					if err != nil {
						logger.ErrorContext(ctx, "failed to write unauthorized response",
							"error", err,
							"request_id", requestID,
						)
					}
					return
				}

				ctx := context.WithValue(r.Context(), ContextKeyClientID, claims.ClientID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No Authorization header or invalid format
			ctx := r.Context()
			requestID := GetRequestID(ctx)
			logger.WarnContext(ctx, "unauthorized access - missing token",
				"request_id", requestID,
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, err := w.Write([]byte(`{"error":"unauthorized","error_description":"Missing or invalid Authorization header"}`))
			if err != nil {
				logger.ErrorContext(ctx, "failed to write unauthorized response",
					"error", err,
					"request_id", requestID,
				)
			}
		})
	}
}
