package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func TestNewIssuer(t *testing.T) {
	t.Run("valid algorithms", func(t *testing.T) {
		for _, alg := range []string{"HS256", "HS384", "HS512"} {
			_, err := NewIssuer(testSecret, alg)
			assert.NoError(t, err, alg)
		}
	})

	t.Run("rejects non-HMAC algorithm", func(t *testing.T) {
		_, err := NewIssuer(testSecret, "RS256")
		assert.Error(t, err)
	})

	t.Run("rejects missing secret", func(t *testing.T) {
		_, err := NewIssuer(nil, "HS256")
		assert.Error(t, err)
	})
}

func TestIssueAndVerify(t *testing.T) {
	issuer, err := NewIssuer(testSecret, "HS256")
	require.NoError(t, err)

	in := Claims{AdminID: "5fbe", OrgID: "81aa", Email: "admin@acme.test"}
	signed, err := issuer.Issue(in, time.Minute)
	require.NoError(t, err)

	out, err := issuer.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, "5fbe", out.AdminID)
	assert.Equal(t, "81aa", out.OrgID)
	assert.Equal(t, "admin@acme.test", out.Email)
	assert.NotNil(t, out.IssuedAt)
	assert.NotNil(t, out.ExpiresAt)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer, err := NewIssuer(testSecret, "HS256")
	require.NoError(t, err)

	signed, err := issuer.Issue(Claims{AdminID: "5fbe"}, -time.Minute)
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, err := NewIssuer(testSecret, "HS256")
	require.NoError(t, err)

	other, err := NewIssuer([]byte("a-different-secret"), "HS256")
	require.NoError(t, err)

	signed, err := other.Issue(Claims{AdminID: "5fbe"}, time.Minute)
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAlgorithmMismatch(t *testing.T) {
	issuer, err := NewIssuer(testSecret, "HS256")
	require.NoError(t, err)

	// Signed with HS512 but verified by an HS256 issuer
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		AdminID: "5fbe",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer, err := NewIssuer(testSecret, "HS256")
	require.NoError(t, err)

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmptyOrgIDOmitted(t *testing.T) {
	issuer, err := NewIssuer(testSecret, "HS256")
	require.NoError(t, err)

	signed, err := issuer.Issue(Claims{AdminID: "5fbe", Email: "admin@acme.test"}, time.Minute)
	require.NoError(t, err)

	out, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Empty(t, out.OrgID)
}
