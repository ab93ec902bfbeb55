// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"

	"vuttr/config"
	"vuttr/internal/domain/service"
	"vuttr/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher with the cost from auth.bcryptCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into bcrypt's accepted range.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	cost = max(bcrypt.MinCost, min(cost, bcrypt.MaxCost))

	return &bcryptHasher{cost: cost}
}

// Hash generates a bcrypt hash of the credential.
func (h *bcryptHasher) Hash(credential string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(prehash(credential), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a credential with a bcrypt hash.
func (h *bcryptHasher) Check(credential, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(credential)) == nil
}

// prehash folds the credential into 44 bytes. Salted credentials are base64 of
// password+salt and easily exceed bcrypt's 72 byte input limit.
func prehash(credential string) []byte {
	sum := sha256.Sum256([]byte(credential))
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(encoded, sum[:])

	return encoded
}
