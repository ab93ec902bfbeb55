// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity able to authenticate against the catalog.
// PasswordHash is always derived from the combined password and salt, never from the raw password.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login name; becomes the token subject.
	Email        string    // Unique contact email, carried as a token claim.
	PasswordHash string    // One-way hash produced by the credential store.
	Salt         string    // Per-user random salt, fixed at creation.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}
