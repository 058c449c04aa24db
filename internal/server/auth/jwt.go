// Package auth implements credential hashing and bearer-token issuance for
// the CloudVault server.
package auth

import (
	"time"

	"github.com/dmitrijs2005/cloudvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims embeds the registered claim set and carries the account email as
// the token subject.
type Claims struct {
	jwt.RegisteredClaims
	Email string
}

// GenerateToken issues an HS256-signed token binding the given email, valid
// for validityDuration from now.
func GenerateToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetEmailFromToken verifies the signature and expiry of tokenString and
// returns the embedded email. Malformed, tampered or expired tokens yield
// common.ErrInvalidToken.
func GetEmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}
