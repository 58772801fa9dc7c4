// Package auth mints and verifies identity tokens: HS256 JWTs whose subject
// is the identity reference and which carry the given name for discovery.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/t4gged/t4gged/internal/common"
)

// Claims are the identity token claims. Subject holds the identity ref.
type Claims struct {
	jwt.RegisteredClaims
	GivenName string `json:"given_name,omitempty"`
}

func GenerateIdentityToken(ref, givenName string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if ref == "" {
		return "", common.ErrInvalidArgument
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ref,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		GivenName: givenName,
	})

	return token.SignedString(secretKey)
}

// IdentityFromToken verifies tokenString and returns the identity ref.
// Any verification failure yields common.ErrInvalidToken.
func IdentityFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Join(common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
