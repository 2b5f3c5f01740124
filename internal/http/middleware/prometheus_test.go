package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())

	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/documents/:id", ok)
	app.Delete("/documents/:id", ok)
	app.Post("/views/:vid/columns/:key", ok)
	app.Post("/views/:vid/confirm", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "no delete awaiting confirmation")
	})
	app.Get("/metrics", ok)
	return app, m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	app, m, _ := newPromApp(t)

	tests := []struct {
		method  string
		target  string
		pattern string
		status  string
	}{
		{"GET", "/documents/123", "/documents/:id", "200"},
		{"DELETE", "/documents/123", "/documents/:id", "200"},
		{"POST", "/views/v1/columns/column2", "/views/:vid/columns/:key", "200"},
		{"POST", "/views/v1/confirm", "/views/:vid/confirm", "409"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			_, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)

			count := testutil.ToFloat64(m.requestCount.WithLabelValues(tt.method, tt.pattern, tt.status))
			assert.Equal(t, float64(1), count)
		})
	}

	// one histogram series per (method, route pattern)
	assert.Equal(t, 4, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	app, m, _ := newPromApp(t)

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, 0, testutil.CollectAndCount(m.requestCount))
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
