package auth

import (
	"context"
	"sync"

	"vuttr/internal/domain/credential"
	"vuttr/internal/domain/entity"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/repository"
	"vuttr/internal/domain/service"
	"vuttr/internal/errors"
)

// credentialStore adapts a UserRepository and a PasswordHasher into the
// CredentialStore the use cases talk to.
type credentialStore struct {
	users  repository.UserRepository
	hasher service.PasswordHasher

	decoyOnce sync.Once
	decoyHash string
}

func NewCredentialStore(users repository.UserRepository, hasher service.PasswordHasher) service.CredentialStore {
	return &credentialStore{users: users, hasher: hasher}
}

func (s *credentialStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *credentialStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// CreateIdentity requires a salt on user; the stored hash is never derived from an unsalted password.
func (s *credentialStore) CreateIdentity(ctx context.Context, user *entity.User, combinedCredential string) error {
	if user.Salt == "" {
		return domainerrors.ErrUserCreationFailed.WrapMessage("refusing to store identity without salt")
	}

	hash, err := s.hasher.Hash(combinedCredential)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash

	return s.users.Create(ctx, user)
}

// VerifyCredential always spends one hash comparison. Without a stored hash it
// compares against a decoy and reports false, so an unknown username costs as
// much as a wrong password.
func (s *credentialStore) VerifyCredential(user *entity.User, combinedCredential string) bool {
	if user == nil || user.PasswordHash == "" {
		if decoy := s.decoy(); decoy != "" {
			s.hasher.Check(combinedCredential, decoy)
		}

		return false
	}

	return s.hasher.Check(combinedCredential, user.PasswordHash)
}

func (s *credentialStore) decoy() string {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(credential.Combine("decoy", credential.GenerateSalt()))
		if err == nil {
			s.decoyHash = hash
		}
	})

	return s.decoyHash
}
