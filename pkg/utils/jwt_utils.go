package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs and verifies session tokens. It is injected once at
// startup from the JWT_SECRET environment variable via InitJWT.
var jwtSecretKey []byte

// AccessTokenTTL is how long an issued session token stays valid.
// There is no refresh mechanism; staff re-authenticate after expiry.
const AccessTokenTTL = 8 * time.Hour

// ErrInvalidToken is returned by ValidateToken for any token that is
// malformed, carries a bad signature, or has expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// InitJWT sets the signing secret. Must be called before any token is
// issued or verified.
func InitJWT(secret string) {
	jwtSecretKey = []byte(secret)
}

// Claims defines the JWT claims structure carried by session tokens.
type Claims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a signed session token for the given staff
// identity, expiring AccessTokenTTL from now.
func GenerateAccessToken(userID int64, name, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "event-agency-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a session token string.
// It returns the claims if the token is valid, otherwise ErrInvalidToken.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
