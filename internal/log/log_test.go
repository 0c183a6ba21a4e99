package log

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m), buf.String())
	return m
}

func TestInfoWithoutRequest(t *testing.T) {
	buf := capture(t)
	Info(nil, "db.open", map[string]any{"driver": "sqlite"})

	m := decode(t, buf)
	assert.Equal(t, "db.open", m["action"])
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "sqlite", m["driver"])
	assert.NotContains(t, m, "path")
}

func TestErrorCarriesRequestFields(t *testing.T) {
	buf := capture(t)
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		c.Locals("requestid", "rid-1")
		Error(c, "cart.add", errors.New("boom"), nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)

	m := decode(t, buf)
	assert.Equal(t, "error", m["level"])
	assert.Equal(t, "boom", m["error"])
	assert.Equal(t, "rid-1", m["req_id"])
	assert.Equal(t, "/x", m["path"])
	assert.Equal(t, "GET", m["method"])
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Setup("loud", ""))
	require.NoError(t, Setup("warn", ""))
	t.Cleanup(func() { _ = Setup("info", "") })

	buf := capture(t)
	Info(nil, "hidden", nil)
	assert.Empty(t, buf.String())
	Security(nil, "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestAccessLine(t *testing.T) {
	buf := capture(t)
	app := fiber.New()
	app.Get("/healthz", func(c *fiber.Ctx) error {
		c.Status(fiber.StatusNoContent)
		Access(c, "1.2ms")
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)

	m := decode(t, buf)
	assert.Equal(t, "access", m["kind"])
	assert.Equal(t, "http.request", m["action"])
	assert.Equal(t, "1.2ms", m["latency"])
	assert.EqualValues(t, fiber.StatusNoContent, m["status"])
}
