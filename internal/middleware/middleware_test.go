package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/history/:username", func(c *fiber.Ctx) error {
		if c.Params("username") == "ghost" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no history for ghost"})
		}
		return c.JSON([]string{})
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "down")
	})

	t.Run("ok request logs at info", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/history/alice?limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "http_request", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "/history/alice", fields["path"])
		assert.Equal(t, "limit=5", fields["query"])
		assert.EqualValues(t, 200, fields["status"])
	})

	t.Run("not found logs at warn", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/history/ghost", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("handler error logs final status", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.EqualValues(t, fiber.StatusServiceUnavailable, entries[0].ContextMap()["status"])
	})
}
