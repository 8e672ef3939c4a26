package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/multistore-api/internal/interfaces/http"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	var out bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Output: &out})))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString(apphttp.GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
	assert.Contains(t, out.String(), `"request_id":"req-123"`)
	assert.Contains(t, out.String(), `"status":200`)
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}
