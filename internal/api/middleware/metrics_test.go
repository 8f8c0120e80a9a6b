package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/competitive-price-monitor/internal/api/middleware"
	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
)

func sampleCount(t *testing.T, method, route, status string) uint64 {
	t.Helper()
	observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(method, route, status)
	require.NoError(t, err)
	m := &io_prometheus_client.Metric{}
	require.NoError(t, observer.(prometheus.Metric).Write(m))
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_LabelsByRoute(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus string
	}{
		{
			name:   "path parameters collapse to the route",
			method: http.MethodPost,
			route:  "/api/v1/alerts/:id/read",
			target: "/api/v1/alerts/7c9e6679-7425-40de-944b-e07fc1f90ae7/read",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]bool{"success": true})
			},
			wantStatus: "200",
		},
		{
			name:   "written error status",
			method: http.MethodGet,
			route:  "/api/v1/history/:asin/prices",
			target: "/api/v1/history/B0OURS0001/prices",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: "404",
		},
		{
			name:   "returned echo error",
			method: http.MethodPost,
			route:  "/api/v1/monitoring/run",
			target: "/api/v1/monitoring/run",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing bearer token")
			},
			wantStatus: "401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, tt.wantStatus))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, http.NoBody))

			after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, tt.wantStatus))
			assert.InDelta(t, 1, after-before, 0)
			assert.Positive(t, sampleCount(t, tt.method, tt.route, tt.wantStatus))
		})
	}
}

func TestMetrics_InFlightReturnsToZero(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	var during float64
	e.GET("/api/v1/monitoring/stats", func(c echo.Context) error {
		during = testutil.ToFloat64(metrics.HTTPRequestsInFlight)
		return c.NoContent(http.StatusOK)
	})

	before := testutil.ToFloat64(metrics.HTTPRequestsInFlight)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/stats", http.NoBody))

	assert.GreaterOrEqual(t, during, before+1)
	assert.InDelta(t, before, testutil.ToFloat64(metrics.HTTPRequestsInFlight), 0)
}

func TestMetrics_HealthChecksSetGauges(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	ready := true
	e.GET("/readyz", func(c echo.Context) error {
		if ready {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReadyzUp), 0)

	ready = false
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.ReadyzUp), 0)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.HealthzUp), 0)

	// Health checks never count as API traffic.
	assert.Zero(t, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/readyz", "200")))
}
