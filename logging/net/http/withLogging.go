package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/the-yaml-life/tyl-logging/logging"
)

type logMiddleware struct {
	logger    logging.Logger
	skipPaths map[string]struct{}
}

// LogMiddlewareOption configures the access-log middleware.
type LogMiddlewareOption func(l *logMiddleware)

// WithCustomLogger replaces the default JSON logger.
func WithCustomLogger(logger logging.Logger) LogMiddlewareOption {
	return func(l *logMiddleware) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSkipPaths disables access logging for exact request paths, such as
// health checks.
func WithSkipPaths(paths ...string) LogMiddlewareOption {
	return func(l *logMiddleware) {
		for _, path := range paths {
			l.skipPaths[path] = struct{}{}
		}
	}
}

// buildOpts creates an instance of logMiddleware with options.
func buildOpts(opts ...LogMiddlewareOption) *logMiddleware {
	mid := &logMiddleware{
		logger:    logging.NewJSONLogger(),
		skipPaths: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(mid)
	}

	return mid
}

// WithLogging emits one access record per request through the facade:
// message "<METHOD> <PATH>" with method, path, status, duration_ms and
// remote_addr fields, carrying the request's correlation ID. The severity
// follows the response status class (5xx error, 4xx warn, otherwise info).
//
// The correlation ID is stamped first, so the middleware works standalone or
// behind WithRequestID, and the logger is stored in the user context for
// handlers to pick up with logging.LoggerFromContext.
func WithLogging(opts ...LogMiddlewareOption) fiber.Handler {
	mid := buildOpts(opts...)

	return func(c *fiber.Ctx) error {
		if _, ok := mid.skipPaths[c.Path()]; ok {
			return c.Next()
		}

		stampRequestID(c)

		ctx := logging.ContextWithLogger(c.UserContext(), mid.logger)
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()

		record := logging.NewRecordFromContext(c.UserContext(), statusLevel(status), c.Method()+" "+c.Path())
		record.AddField("method", c.Method())
		record.AddField("path", c.Path())
		record.AddField("status", status)
		record.AddField("duration_ms", time.Since(start).Milliseconds())
		record.AddField("remote_addr", c.IP())

		mid.logger.Log(&record)

		return err
	}
}

// statusLevel maps a response status class to a record severity.
func statusLevel(status int) logging.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return logging.LevelError
	case status >= fiber.StatusBadRequest:
		return logging.LevelWarn
	default:
		return logging.LevelInfo
	}
}
