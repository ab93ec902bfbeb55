package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims carried by every bearer token. Subject is the username.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens handed to clients.
type TokenService interface {
	// IssueToken signs a token for the given identity and returns it with its expiry.
	IssueToken(username, email string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry, issuer and audience.
	ValidateToken(tokenString string) (*Claims, error)
}
