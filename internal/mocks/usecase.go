package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"vuttr/internal/usecase"
)

// UserUsecase mocks usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func NewUserUsecase(t *testing.T) *UserUsecase {
	m := &UserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *UserUsecase) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)

	out, _ := args.Get(0).(*usecase.RegisterOutput)

	return out, args.Error(1)
}

func (m *UserUsecase) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	args := m.Called(ctx, input)

	out, _ := args.Get(0).(*usecase.AuthenticateOutput)

	return out, args.Error(1)
}

func (m *UserUsecase) AlreadyExists(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)

	return args.Bool(0), args.Error(1)
}

// ToolUsecase mocks usecase.ToolUsecase.
type ToolUsecase struct {
	mock.Mock
}

func NewToolUsecase(t *testing.T) *ToolUsecase {
	m := &ToolUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ToolUsecase) Create(ctx context.Context, input *usecase.ToolInput) (*usecase.ToolView, error) {
	args := m.Called(ctx, input)

	out, _ := args.Get(0).(*usecase.ToolView)

	return out, args.Error(1)
}

func (m *ToolUsecase) Get(ctx context.Context, id int) (*usecase.ToolView, error) {
	args := m.Called(ctx, id)

	out, _ := args.Get(0).(*usecase.ToolView)

	return out, args.Error(1)
}

func (m *ToolUsecase) List(ctx context.Context, tag string) ([]*usecase.ToolView, error) {
	args := m.Called(ctx, tag)

	out, _ := args.Get(0).([]*usecase.ToolView)

	return out, args.Error(1)
}

func (m *ToolUsecase) Update(ctx context.Context, id int, input *usecase.ToolInput) (*usecase.ToolView, error) {
	args := m.Called(ctx, id, input)

	out, _ := args.Get(0).(*usecase.ToolView)

	return out, args.Error(1)
}

func (m *ToolUsecase) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
