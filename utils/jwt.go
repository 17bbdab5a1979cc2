package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an operator token.
type Claims struct {
	OperatorID uint   `json:"operatorId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed JWT for an operator.
func GenerateToken(operatorID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		OperatorID: operatorID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
