// server/internal/auth/auth.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSubject identifies session tokens minted by validate-key.
const TokenSubject = "attendance-form"

// SessionClaims is the payload of a form session token. The token
// carries no identity beyond "this client presented the passkey".
type SessionClaims struct {
	jwt.RegisteredClaims
}

// GenerateSessionToken mints a short-lived HS256 token after a
// successful passkey validation.
func GenerateSessionToken(secret []byte, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   TokenSubject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken validates a session token string.
func ParseSessionToken(secret []byte, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject != TokenSubject {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
