// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"vuttr/internal/delivery/http/response"
	"vuttr/internal/errors"
	"vuttr/internal/infra/metrics"
	"vuttr/internal/usecase"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger, m *metrics.Metrics) *UserHandler {
	return &UserHandler{
		uc:      uc,
		logger:  logger,
		metrics: m,
	}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Authenticate handles POST /api/users/authenticate. Unknown users and wrong
// passwords get the same 401 body.
func (h *UserHandler) Authenticate(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authentication input")
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	h.metrics.ObserveAuth(authOutcome(err))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Authentication successful")
}

func authOutcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	authErr, ok := errors.AsType[*usecase.AuthenticationError](err)
	if !ok {
		return metrics.OutcomeError
	}

	switch authErr.Reason {
	case usecase.AuthFailureUserNotFound:
		return metrics.OutcomeUserNotFound
	case usecase.AuthFailureBadCredentials:
		return metrics.OutcomeBadCredentials
	default:
		return metrics.OutcomeError
	}
}
