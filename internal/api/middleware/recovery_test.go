package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
)

func serveWithRecovery(t *testing.T, h echo.HandlerFunc, method, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestLog(slog.New(slog.DiscardHandler)))
	e.Use(Recovery(log))
	e.Add(method, target, h)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, http.NoBody)
	req.Header.Set(requestIDHeader, "req-123")
	e.ServeHTTP(rec, req)
	return rec, buf.String()
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		panicVal any
		wantLogs []string
	}{
		{
			name:     "string value",
			method:   http.MethodPost,
			target:   "/api/v1/monitoring/run",
			panicVal: "nil snapshot",
			wantLogs: []string{"panic recovered", "nil snapshot", "path=/api/v1/monitoring/run", "request_id=req-123"},
		},
		{
			name:     "non-string value",
			method:   http.MethodGet,
			target:   "/api/v1/alerts",
			panicVal: 42,
			wantLogs: []string{"error=42", "method=GET"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.HTTPPanicsTotal)

			rec, logs := serveWithRecovery(t, func(_ echo.Context) error {
				panic(tt.panicVal)
			}, tt.method, tt.target)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get(echo.HeaderContentType))

			var problem huma.ErrorModel
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, http.StatusInternalServerError, problem.Status)
			assert.Equal(t, "internal server error", problem.Detail)

			for _, want := range tt.wantLogs {
				assert.Contains(t, logs, want)
			}
			assert.InDelta(t, 1, testutil.ToFloat64(metrics.HTTPPanicsTotal)-before, 0)
		})
	}
}

func TestRecovery_NoPanic(t *testing.T) {
	rec, logs := serveWithRecovery(t, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, http.MethodGet, "/api/v1/monitoring/stats")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logs)
}
