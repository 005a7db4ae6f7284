package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/journals/:id", func(c *fiber.Ctx) error {
		time.Sleep(15 * time.Millisecond)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/attachments/:id/:file", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/journals/sync", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad since")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, m, reg
}

// durationHistogram returns the http_request_duration_seconds series for
// method and path, or nil when it was never observed.
func durationHistogram(t *testing.T, reg *prometheus.Registry, method, path string) *dto.Histogram {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["path"] == path {
				return metric.GetHistogram()
			}
		}
	}
	return nil
}

func TestPrometheusMiddleware_CountsByRouteAndStatus(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	tests := []struct {
		method, target string
		path, status   string
	}{
		{"GET", "/journals/j-1", "/journals/:id", "200"},
		{"GET", "/journals/j-2", "/journals/:id", "200"},
		{"DELETE", "/attachments/a-1/receipt.pdf", "/attachments/:id/:file", "204"},
		{"POST", "/journals/sync", "/journals/sync", "400"},
		{"GET", "/boom", "/boom", "500"},
	}
	for _, tt := range tests {
		_, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/journals/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("DELETE", "/attachments/:id/:file", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("POST", "/journals/sync", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/boom", "500")))
}

func TestPrometheusMiddleware_ObservesDuration(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	for _, target := range []string{"/journals/j-1", "/journals/j-2", "/journals/j-3"} {
		_, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
	}
	_, err := app.Test(httptest.NewRequest("POST", "/journals/sync", nil))
	require.NoError(t, err)

	h := durationHistogram(t, reg, "GET", "/journals/:id")
	require.NotNil(t, h)
	assert.Equal(t, uint64(3), h.GetSampleCount())
	assert.GreaterOrEqual(t, h.GetSampleSum(), 3*0.015)
	require.NotEmpty(t, h.GetBucket())
	// Cumulative buckets end at the total observation count.
	assert.Equal(t, uint64(3), h.GetBucket()[len(h.GetBucket())-1].GetCumulativeCount())

	syncHist := durationHistogram(t, reg, "POST", "/journals/sync")
	require.NotNil(t, syncHist)
	assert.Equal(t, uint64(1), syncHist.GetSampleCount())

	assert.Nil(t, durationHistogram(t, reg, "DELETE", "/attachments/:id/:file"))
}

func TestPrometheusMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	app, m, reg := newMetricsApp(t)

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, 0, testutil.CollectAndCount(m.requestCount))
	assert.Nil(t, durationHistogram(t, reg, "GET", "/metrics"))
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
