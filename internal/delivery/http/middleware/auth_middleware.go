package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "vuttr/internal/delivery/context"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/domain/service"
)

// AuthMiddleware validates bearer tokens issued by the token service.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid "Authorization: Bearer <jwt>" header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must use the Bearer scheme")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default())
			logger.Debug("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrTokenInvalid.WithDetails("invalid or expired token")
		}

		ctx := deliverycontext.WithUsername(c.Request().Context(), claims.Subject)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("username", claims.Subject)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
