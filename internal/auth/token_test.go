package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayuvibe-server/internal/auth"
	"ayuvibe-server/internal/config"
)

func newIssuer(secret string) *auth.TokenIssuer {
	return auth.NewTokenIssuer(&config.Config{JWTSecret: secret})
}

func TestIssueAndValidate(t *testing.T) {
	issuer := newIssuer("test-secret")

	token, err := issuer.Issue("a@x.com", 42, 30*time.Minute)
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, uint(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIssueDefaultTTL(t *testing.T) {
	issuer := newIssuer("test-secret")

	token, err := issuer.Issue("a@x.com", 1, 0)
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

// JWT_EXPIRATION_MINUTES drives the issuer's default lifetime, not the
// DefaultTokenTTL constant.
func TestIssueConfiguredDefaultTTL(t *testing.T) {
	issuer := auth.NewTokenIssuer(&config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 5})

	token, err := issuer.Issue("a@x.com", 1, 0)
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateExpired(t *testing.T) {
	issuer := newIssuer("test-secret")

	token, err := issuer.Issue("a@x.com", 1, time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := newIssuer("secret-one").Issue("a@x.com", 1, time.Minute)
	require.NoError(t, err)

	_, err = newIssuer("secret-two").Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateMalformed(t *testing.T) {
	issuer := newIssuer("test-secret")

	for _, bad := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Validate(bad)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	issuer := newIssuer("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
