package middleware_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anamkhan-2/bzooo-webtechProject/middleware"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier(t *testing.T) {
	secret := []byte("test-secret")
	v := middleware.JWTVerifier{Secret: secret}

	assert.True(t, v.Verify(signToken(t, secret, jwt.MapClaims{"role": "admin"})))
	assert.False(t, v.Verify(signToken(t, secret, jwt.MapClaims{"role": "customer"})))
	assert.False(t, v.Verify(signToken(t, []byte("other-secret"), jwt.MapClaims{"role": "admin"})))
	assert.False(t, v.Verify("not-a-token"))
}

func TestAPIKeyVerifier(t *testing.T) {
	v := middleware.APIKeyVerifier{Key: "zoo-admin"}

	assert.True(t, v.Verify("zoo-admin"))
	assert.False(t, v.Verify("wrong"))

	// An unset key must never grant access.
	empty := middleware.APIKeyVerifier{}
	assert.False(t, empty.Verify(""))
}
