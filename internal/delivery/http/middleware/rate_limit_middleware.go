package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"vuttr/config"
	domainerrors "vuttr/internal/domain/errors"
)

const (
	defaultRateLimit     = 5
	defaultRateBurst     = 10
	defaultRateExpiresIn = 3 * time.Minute
)

// NewRateLimiter throttles a route per client IP with a token bucket.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit, burst, expiresIn := rate.Limit(defaultRateLimit), defaultRateBurst, defaultRateExpiresIn
	if rl := cfg.RateLimit; rl != nil {
		if rl.Rate > 0 {
			limit = rate.Limit(rl.Rate)
		}
		if rl.Burst > 0 {
			burst = rl.Burst
		}
		if rl.ExpiresIn > 0 {
			expiresIn = rl.ExpiresIn
		}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     burst,
		ExpiresIn: expiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return domainerrors.ErrRateLimited.WithDetails(err.Error())
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return domainerrors.ErrRateLimited
		},
	})
}
