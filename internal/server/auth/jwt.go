// Package auth provides token minting/parsing and password hashing for the
// authentication service.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// TokenDetails are the verified fields extracted from an access token.
// ID is the jti claim and is the key used by the revocation registry.
type TokenDetails struct {
	Subject string
	ID      string
}

// GenerateToken mints an HS256 access token for the given subject (username).
// Every token carries a fresh uuid as jti, so re-authentication always yields
// a new revocation key.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the token details.
// It does not consult the revocation registry; that check belongs to the
// caller at the point the token is accepted for a guarded operation.
func ParseToken(tokenString string, secretKey []byte) (*TokenDetails, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &TokenDetails{Subject: claims.Subject, ID: claims.ID}, nil
}
