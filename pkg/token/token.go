package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, algorithm or
// expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the session token claim set. OrgID is empty when the admin has
// no active organization at login time.
type Claims struct {
	AdminID string `json:"admin_id"`
	OrgID   string `json:"org_id,omitempty"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a shared secret and a fixed
// HMAC algorithm. Tokens carry their own expiry; there is no revocation list,
// so a token stays valid for its full TTL even if the organization is deleted
// or renamed mid-session.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
}

// NewIssuer creates an Issuer. algorithm must be one of HS256, HS384, HS512.
func NewIssuer(secret []byte, algorithm string) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("token signing secret is required")
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported token algorithm: %s", algorithm)
	}

	return &Issuer{secret: secret, method: method}, nil
}

// Issue signs the claims with issued-at now and the given expiry.
func (i *Issuer) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	tok := jwt.NewWithClaims(i.method, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, enforcing the configured
// algorithm and expiry. Returns ErrInvalidToken on any failure.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{i.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
