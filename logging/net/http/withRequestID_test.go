package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-yaml-life/tyl-logging/logging"
)

func TestWithRequestID_ReusesInboundHeader(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Use(WithRequestID())

	var fromContext string

	app.Get("/", func(c *fiber.Ctx) error {
		fromContext, _ = logging.RequestIDFromContext(c.UserContext())
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderID, "req-inbound")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Equal(t, "req-inbound", resp.Header.Get(HeaderID))
	assert.Equal(t, "req-inbound", fromContext)
}

func TestWithRequestID_MintsWhenAbsent(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Use(WithRequestID())

	var fromContext string

	app.Get("/", func(c *fiber.Ctx) error {
		fromContext, _ = logging.RequestIDFromContext(c.UserContext())
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	headerID := resp.Header.Get(HeaderID)
	assert.Len(t, headerID, 36)
	assert.Equal(t, headerID, fromContext)
}

func TestWithRequestID_BlankHeaderCountsAsAbsent(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Use(WithRequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderID, "   ")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Len(t, resp.Header.Get(HeaderID), 36)
}
