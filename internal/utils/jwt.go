package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySignKey is returned when a token is signed or parsed without a key.
var ErrEmptySignKey = errors.New("empty JWT sign key")

// SignJWT signs claims with HMAC-SHA256 using signKey and returns the
// compact token string.
//
// Example usage:
//
//	signed, err := utils.SignJWT(&jwt.RegisteredClaims{Subject: "42"}, "secret")
func SignJWT(claims jwt.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrEmptySignKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ParseJWT validates tokenString and decodes its claims into claims.
//
// Validation includes:
//   - Signature verification with signKey (HS256 only)
//   - Expiration (exp) claim check, when present
//   - Any additional parser options, e.g. jwt.WithExpirationRequired()
func ParseJWT(tokenString string, claims jwt.Claims, signKey string, opts ...jwt.ParserOption) error {
	if signKey == "" {
		return ErrEmptySignKey
	}

	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return nil
}
