package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateSessionToken(secret, time.Minute)
	assert.NoError(t, err)

	claims, err := ParseSessionToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, TokenSubject, claims.Subject)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken([]byte("secret-a"), time.Minute)
	assert.NoError(t, err)

	_, err = ParseSessionToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestParseSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken([]byte("secret"), -time.Minute)
	assert.NoError(t, err)

	_, err = ParseSessionToken([]byte("secret"), token)
	assert.Error(t, err)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	_, err := ParseSessionToken([]byte("secret"), "not-a-token")
	assert.Error(t, err)
}
