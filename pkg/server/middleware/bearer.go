package middleware

import (
	"context"
	"net/http"
	"regexp"

	"orghub/pkg/token"
)

var bearerRegex = regexp.MustCompile(`^Bearer (\S+)$`)

type contextKey string

// ClaimsKey is the request context key under which verified token claims are
// stored.
const ClaimsKey contextKey = "claims"

// BearerAuthenticator is middleware that validates bearer session tokens
type BearerAuthenticator struct {
	Issuer *token.Issuer
}

// NewBearerAuthenticator creates a new bearer token authenticator middleware
func NewBearerAuthenticator(issuer *token.Issuer) *BearerAuthenticator {
	return &BearerAuthenticator{Issuer: issuer}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// places the verified claims on the request context.
func (b *BearerAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenMatches := bearerRegex.FindStringSubmatch(authHeader)

		if len(tokenMatches) != 2 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		claims, err := b.Issuer.Verify(tokenMatches[1])
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext extracts verified claims placed on the context by
// Middleware. ok is false when the request did not pass through it.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*token.Claims)
	return claims, ok
}
