// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a one-way hash from a credential string.
	Hash(credential string) (string, error)

	// Check compares a credential string with a hash to see if they match.
	Check(credential, hash string) bool
}
