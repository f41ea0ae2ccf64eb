package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every session token.
type Claims struct {
	UserID    uint   `json:"userId"`
	Role      string `json:"role"`
	Bootstrap bool   `json:"bootstrap,omitempty"` // store-independent admin session
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, bootstrap bool, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		Bootstrap: bootstrap,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
