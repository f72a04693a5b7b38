package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Identity is the verified caller attached to a request context. It is the
// sole source of truth for ownership checks; handlers never trust a
// client-supplied userId.
type Identity struct {
	UserID   int64
	Username string
}

type contextKey string

const identityKey = contextKey("identity")

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok
}

// Middleware returns a middleware that rejects any request lacking a valid
// `Authorization: Bearer <token>` header with 401. On success the verified
// identity is attached to the request context.
func Middleware(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, "authentication required")
				return
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				log.Warn().Str("path", r.URL.Path).Msg("Rejected request with invalid token")
				unauthorized(w, "invalid token")
				return
			}

			ident := Identity{UserID: claims.UserID, Username: claims.Username}
			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
