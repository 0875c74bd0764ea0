package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ayuvibe-server/internal/config"
)

// DefaultTokenTTL applies when the configuration does not set a token
// lifetime of its own.
const DefaultTokenTTL = 15 * time.Minute

// ErrInvalidToken is returned for any token that fails validation: bad
// signature, expired, wrong algorithm or malformed structure. Callers get no
// finer detail.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the JWT claims. Subject carries the email; identifiers are
// only unique per account type, so UserID alone never identifies a user.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates bearer tokens with a process-wide secret.
type TokenIssuer struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenIssuer creates a TokenIssuer from the loaded configuration. The
// configured JWTExpirationMinutes becomes the issuer's default lifetime;
// DefaultTokenTTL covers a configuration that leaves it unset.
func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	defaultTTL := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(cfg.JWTSecret), defaultTTL: defaultTTL}
}

// Issue signs a token for the given identity. A non-positive ttl falls back to
// the issuer's configured default.
func (i *TokenIssuer) Issue(email string, userID uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = i.defaultTTL
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Validate parses and verifies a token string, returning its claims.
func (i *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// block alg confusion
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
