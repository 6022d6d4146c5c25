package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken parses a token and returns its claims when the signature and expiry are valid.
	ValidateToken(tokenString string) (*Claims, error)
}
