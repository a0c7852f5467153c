package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateAccessToken(42, "Ana Souza", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Ana Souza", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenExpired(t *testing.T) {
	InitJWT("test-secret")

	expired := time.Now().Add(-AccessTokenTTL - time.Minute)
	claims := &Claims{
		UserID: 42,
		Name:   "Ana Souza",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expired),
			IssuedAt:  jwt.NewNumericDate(expired.Add(-AccessTokenTTL)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenTampered(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateAccessToken(1, "Ana", "staff")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "XXXX"
	_, err = ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	InitJWT("other-secret")
	token, err := GenerateAccessToken(1, "Ana", "staff")
	require.NoError(t, err)

	InitJWT("test-secret")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenMalformed(t *testing.T) {
	InitJWT("test-secret")

	_, err := ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
