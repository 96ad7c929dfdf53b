package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/workflo/workflo-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthHeader is the request header carrying the bearer token. The API
// predates Authorization-header conventions here and clients send the raw
// token in a custom header.
const AuthHeader = "x-auth-token"

// TokenAuth returns middleware that validates the token from the x-auth-token
// header. The token alone is trusted: no user lookup happens here, so a
// deleted user's unexpired token still passes.
func TokenAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AuthHeader)
			if token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONMessage(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
