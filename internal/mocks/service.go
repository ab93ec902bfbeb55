package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"vuttr/internal/domain/entity"
	"vuttr/internal/domain/service"
)

// PasswordHasher mocks service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func NewPasswordHasher(t *testing.T) *PasswordHasher {
	m := &PasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *PasswordHasher) Hash(credential string) (string, error) {
	args := m.Called(credential)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(credential, hash string) bool {
	return m.Called(credential, hash).Bool(0)
}

// TokenService mocks service.TokenService.
type TokenService struct {
	mock.Mock
}

func NewTokenService(t *testing.T) *TokenService {
	m := &TokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *TokenService) IssueToken(username, email string) (string, time.Time, error) {
	args := m.Called(username, email)

	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

func (m *TokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)

	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

// CredentialStore mocks service.CredentialStore.
type CredentialStore struct {
	mock.Mock
}

func NewCredentialStore(t *testing.T) *CredentialStore {
	m := &CredentialStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CredentialStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)

	return userArg(args, 0), args.Error(1)
}

func (m *CredentialStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	return userArg(args, 0), args.Error(1)
}

func (m *CredentialStore) CreateIdentity(ctx context.Context, user *entity.User, combinedCredential string) error {
	return m.Called(ctx, user, combinedCredential).Error(0)
}

func (m *CredentialStore) VerifyCredential(user *entity.User, combinedCredential string) bool {
	return m.Called(user, combinedCredential).Bool(0)
}
