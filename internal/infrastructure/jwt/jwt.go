package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims are the claims this service reads from identity-provider
// tokens. Subject carries the opaque user id.
type CustomClaims struct {
	jwt.RegisteredClaims
}

// JWTManager validates bearer tokens issued by the external identity
// provider. The provider and this service share an HMAC secret; everything
// else about the caller's identity is opaque here.
type JWTManager struct {
	secret []byte
}

// NewJWTManager creates a new JWTManager with the given signing secret.
func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// VerifyAccessToken validates the token signature and expiry and returns the
// authenticated user id.
func (m *JWTManager) VerifyAccessToken(tokenStr string) (string, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token: missing subject")
	}
	return claims.Subject, nil
}

// GenerateAccessToken issues a token for a user id. The identity provider
// owns issuance in production; this exists for local development and tests.
func (m *JWTManager) GenerateAccessToken(userID string, ttl time.Duration) (string, error) {
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}
