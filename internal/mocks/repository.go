// Package mocks holds testify mocks and fakes for the domain interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"vuttr/internal/domain/entity"
	"vuttr/internal/domain/repository"
)

// UserRepository mocks repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t *testing.T) *UserRepository {
	m := &UserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)

	return userArg(args, 0), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	return userArg(args, 0), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// ToolRepository mocks repository.ToolRepository.
type ToolRepository struct {
	mock.Mock
}

func NewToolRepository(t *testing.T) *ToolRepository {
	m := &ToolRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ToolRepository) Create(ctx context.Context, tool *entity.Tool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *ToolRepository) FindByID(ctx context.Context, id int) (*entity.Tool, error) {
	args := m.Called(ctx, id)

	return toolArg(args, 0), args.Error(1)
}

func (m *ToolRepository) FindByTitle(ctx context.Context, title string) (*entity.Tool, error) {
	args := m.Called(ctx, title)

	return toolArg(args, 0), args.Error(1)
}

func (m *ToolRepository) FindAll(ctx context.Context) ([]*entity.Tool, error) {
	args := m.Called(ctx)

	return toolsArg(args, 0), args.Error(1)
}

func (m *ToolRepository) FindByTag(ctx context.Context, tag string) ([]*entity.Tool, error) {
	args := m.Called(ctx, tag)

	return toolsArg(args, 0), args.Error(1)
}

func (m *ToolRepository) Update(ctx context.Context, tool *entity.Tool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *ToolRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// TransactionManager runs the callback directly against Factory.
type TransactionManager struct {
	Factory repository.RepositoryFactory
	Calls   int
}

func (m *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.Calls++

	return fn(m.Factory)
}

// RepositoryFactory returns fixed repositories.
type RepositoryFactory struct {
	Users repository.UserRepository
	Tools repository.ToolRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository { return f.Users }

func (f *RepositoryFactory) ToolRepo() repository.ToolRepository { return f.Tools }

func userArg(args mock.Arguments, i int) *entity.User {
	if v, ok := args.Get(i).(*entity.User); ok {
		return v
	}

	return nil
}

func toolArg(args mock.Arguments, i int) *entity.Tool {
	if v, ok := args.Get(i).(*entity.Tool); ok {
		return v
	}

	return nil
}

func toolsArg(args mock.Arguments, i int) []*entity.Tool {
	if v, ok := args.Get(i).([]*entity.Tool); ok {
		return v
	}

	return nil
}
