package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"vuttr/config"
	deliverycontext "vuttr/internal/delivery/context"
	"vuttr/internal/infra/metrics"
)

// LoggerMiddleware records every request in the HTTP metrics and, in debug
// mode, writes an access log line.
type LoggerMiddleware struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	debug   bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, m *metrics.Metrics) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		metrics: m,
		debug:   cfg.Env.Debug,
	}
}

// Handle must run after the error handler has rendered the response, so it
// calls c.Error itself to observe the final status.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		m.metrics.ObserveHTTP(c.Request().Method, routeOf(c), c.Response().Status, time.Since(start))
		if m.debug {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", routeOf(c)),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

// routeOf returns the matched route pattern so metric labels stay bounded.
func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}
