package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/the-yaml-life/tyl-logging/logging"
)

// HeaderID is the request identifier header key.
const HeaderID = "X-Request-Id"

// WithRequestID ensures every request carries a correlation ID: it reuses the
// inbound X-Request-Id header or mints a new one, echoes it on the response,
// and stores it in the user context for handlers and downstream middleware.
func WithRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stampRequestID(c)

		return c.Next()
	}
}

// stampRequestID resolves the request's correlation ID and propagates it to
// the request header, the response header, and the user context.
func stampRequestID(c *fiber.Ctx) string {
	headerID := strings.TrimSpace(c.Get(HeaderID))

	if headerID == "" {
		headerID = logging.GenerateRequestID()
		c.Request().Header.Set(HeaderID, headerID)
	}

	c.Response().Header.Set(HeaderID, headerID)

	ctx := logging.ContextWithRequestID(c.UserContext(), headerID)
	c.SetUserContext(ctx)

	return headerID
}
