package service

import (
	"context"

	"vuttr/internal/domain/entity"
)

// CredentialStore persists identities and owns the hash-and-verify primitive.
// Callers always hand it the combined password+salt string, never the raw password.
type CredentialStore interface {
	// FindByUsername returns repository.ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail returns repository.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// CreateIdentity hashes combinedCredential, stores it on user and persists user.
	CreateIdentity(ctx context.Context, user *entity.User, combinedCredential string) error

	// VerifyCredential reports whether combinedCredential matches the stored hash.
	// A nil user never matches but still costs one comparison.
	VerifyCredential(user *entity.User, combinedCredential string) bool
}
