// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerrors "vuttr/internal/domain/errors"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,email,max=256"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateInput defines the data required for a user to log in.
type AuthenticateInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserView is the public shape of a user; salt and hash never leave the service.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *UserView
}

// AuthenticateOutput carries the issued bearer token.
type AuthenticateOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires"`
}

// AuthFailureReason tells why an authentication attempt was rejected.
// It is for logs only; callers outside the service see ErrInvalidCredentials.
type AuthFailureReason string

const (
	AuthFailureUserNotFound   AuthFailureReason = "user_not_found"
	AuthFailureBadCredentials AuthFailureReason = "bad_credentials"
)

// AuthenticationError is the failure half of an authentication outcome.
// It unwraps to ErrInvalidCredentials whatever the reason.
type AuthenticationError struct {
	Reason AuthFailureReason
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + string(e.Reason)
}

func (e *AuthenticationError) Unwrap() error {
	return domainerrors.ErrInvalidCredentials
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
	AlreadyExists(ctx context.Context, username, email string) (bool, error)
}
