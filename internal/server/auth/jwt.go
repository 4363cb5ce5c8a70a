// Package auth issues and verifies the HS256 access tokens that carry the
// authenticated wallet address.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

const issuer = "tokenlocker"

// Claims carries the owner address as the token subject.
type Claims struct {
	jwt.RegisteredClaims
}

func GenerateToken(owner pubkey.Address, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   owner.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// OwnerFromToken validates tokenString and returns its subject.
func OwnerFromToken(tokenString string, secretKey []byte) (pubkey.Address, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return pubkey.Address{}, common.ErrTokenExpired
		}
		return pubkey.Address{}, err
	}

	if !token.Valid {
		return pubkey.Address{}, common.ErrInvalidToken
	}

	owner, err := pubkey.Parse(claims.Subject)
	if err != nil || owner.IsZero() {
		return pubkey.Address{}, common.ErrInvalidToken
	}
	return owner, nil
}
