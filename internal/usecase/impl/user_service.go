// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "vuttr/internal/delivery/context"
	"vuttr/internal/domain/credential"
	"vuttr/internal/domain/entity"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/repository"
	"vuttr/internal/domain/service"
	"vuttr/internal/errors"
	"vuttr/internal/usecase"
)

// userService implements the UserUsecase interface. It holds no per-request
// state; the identity being processed is always passed explicitly.
type userService struct {
	store        service.CredentialStore
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Store        service.CredentialStore
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		store:        params.Store,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register salts the password, hands the combined credential to the store and
// returns the public view of the new user.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if err := validateInput(input); err != nil {
		srv.log(ctx).Warn("Registration input rejected", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	exists, err := srv.AlreadyExists(ctx, input.Username, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if exists {
		srv.log(ctx).Warn("User already exists", slog.String("username", input.Username), slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
	}

	salt := credential.GenerateSalt()
	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Salt:     salt,
	}

	if err := srv.store.CreateIdentity(ctx, newUser, credential.Combine(input.Password, salt)); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: toUserView(newUser)}, nil
}

// AlreadyExists reports whether either the email or the username is taken.
func (srv *userService) AlreadyExists(ctx context.Context, username, email string) (bool, error) {
	if _, err := srv.store.FindByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.Wrap(err, "failed to find user by email")
	}

	if _, err := srv.store.FindByUsername(ctx, username); err == nil {
		return true, nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.Wrap(err, "failed to find user by username")
	}

	return false, nil
}

// Authenticate walks lookup, credential verification and token issuance.
// Unknown usernames and wrong passwords produce the same ErrInvalidCredentials;
// store failures are returned as they are and never reported as bad credentials.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting authentication", slog.String("username", input.Username))

	user, err := srv.store.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.store.VerifyCredential(nil, credential.Combine(input.Password, ""))

		return nil, srv.reject(ctx, input.Username, usecase.AuthFailureUserNotFound)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.store.VerifyCredential(user, credential.Combine(input.Password, user.Salt)) {
		return nil, srv.reject(ctx, input.Username, usecase.AuthFailureBadCredentials)
	}

	token, expiresAt, err := srv.tokenService.IssueToken(user.Username, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("User authenticated", slog.Any("userID", user.ID))

	return &usecase.AuthenticateOutput{Token: token, ExpiresAt: expiresAt}, nil
}

func (srv *userService) reject(ctx context.Context, username string, reason usecase.AuthFailureReason) error {
	srv.log(ctx).Warn("Authentication failed", slog.String("username", username), slog.String("reason", string(reason)))

	return errors.WithStack(&usecase.AuthenticationError{Reason: reason})
}

func toUserView(user *entity.User) *usecase.UserView {
	return &usecase.UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedOn: user.CreatedAt,
	}
}
