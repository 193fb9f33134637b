package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/metrics"
)

func TestRecorder_Contadores(t *testing.T) {
	m := metrics.New(false)

	m.OrderCreated()
	m.OrderCreated()
	m.OrderTransitioned("preparando", "entregue")
	m.LoginAttempt(true)
	m.LoginAttempt(false)
	m.LoginAttempt(false)
	m.ObservePersist(2*time.Millisecond, nil)
	m.ObservePersist(time.Millisecond, errors.New("disco lleno"))

	body := scrape(t, m)
	assert.Contains(t, body, "lunchcontrol_orders_created_total 2")
	assert.Contains(t, body, `lunchcontrol_orders_transitions_total{from="preparando",to="entregue"} 1`)
	assert.Contains(t, body, `lunchcontrol_auth_login_attempts_total{result="failure"} 2`)
	assert.Contains(t, body, `lunchcontrol_auth_login_attempts_total{result="success"} 1`)
	assert.Contains(t, body, "lunchcontrol_store_persist_errors_total 1")
	assert.Contains(t, body, "lunchcontrol_store_persist_duration_seconds_count 2")
}

func TestMiddleware_UsaRutaRegistrada(t *testing.T) {
	m := metrics.New(false)
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/orders/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() == "lunchcontrol_http_requests_total" {
			for _, metric := range f.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(1), total)
	assert.Contains(t, scrape(t, m), `path="/api/orders/:id"`)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	app := fiber.New()
	app.Get("/metrics", m.Handler())
	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
