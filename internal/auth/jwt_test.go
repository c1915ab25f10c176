package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager(duration time.Duration) *JWTManager {
	return &JWTManager{
		secret:        "test-secret",
		tokenDuration: duration,
	}
}

func TestGenerateAndValidateAccessJWT(t *testing.T) {
	manager := newTestJWTManager(30 * time.Minute)

	token, err := manager.GenerateAccessJWT("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	manager := newTestJWTManager(-time.Minute)

	token, err := manager.GenerateAccessJWT("a@x.com")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestValidateAccessToken_TamperedPayload(t *testing.T) {
	manager := newTestJWTManager(30 * time.Minute)

	token, err := manager.GenerateAccessJWT("a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// flip one character of the payload segment
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = manager.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongKey(t *testing.T) {
	issuer := newTestJWTManager(30 * time.Minute)
	verifier := &JWTManager{secret: "other-secret", tokenDuration: 30 * time.Minute}

	token, err := issuer.GenerateAccessJWT("a@x.com")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	manager := newTestJWTManager(30 * time.Minute)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := manager.ValidateAccessToken(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}
