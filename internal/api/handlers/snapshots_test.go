package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/competitive-price-monitor/internal/api/handlers"
	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// fakeSnapshots is a test double for SnapshotsProvider.
type fakeSnapshots struct {
	recorded   *domain.Snapshot
	compared   engine.CompareInput
	result     *domain.CompareResult
	recordErr  error
	compareErr error
}

func (f *fakeSnapshots) RecordSnapshot(_ context.Context, s *domain.Snapshot) error {
	f.recorded = s
	return f.recordErr
}

func (f *fakeSnapshots) CompareAndAlert(_ context.Context, in engine.CompareInput) (*domain.CompareResult, error) {
	f.compared = in
	return f.result, f.compareErr
}

func newSnapshotsAPI(t *testing.T, f *fakeSnapshots) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterSnapshotRoutes(api, handlers.NewSnapshotsHandler(f))
	return api
}

func TestRecordSnapshot(t *testing.T) {
	t.Parallel()

	f := &fakeSnapshots{}
	api := newSnapshotsAPI(t, f)

	resp := api.Post("/api/v1/snapshots", map[string]any{
		"asin":     "B0OURS0001",
		"value":    "21.50",
		"currency": "USD",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	require.NotNil(t, f.recorded)
	assert.True(t, f.recorded.Value.Equal(decimal.RequireFromString("21.5")))
	assert.Equal(t, "api", f.recorded.DataSource)
}

func TestRecordSnapshot_StoreError(t *testing.T) {
	t.Parallel()

	api := newSnapshotsAPI(t, &fakeSnapshots{recordErr: errors.New("insert failed")})

	resp := api.Post("/api/v1/snapshots", map[string]any{"asin": "B0OURS0001", "value": "1"})
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestCompareSnapshot(t *testing.T) {
	t.Parallel()

	f := &fakeSnapshots{result: &domain.CompareResult{
		AlertCreated: true,
		Message:      "high alert created",
		CurrentValue: decimal.RequireFromString("80"),
	}}
	api := newSnapshotsAPI(t, f)

	resp := api.Post("/api/v1/snapshots/compare", map[string]any{
		"asin":              "B0OURS0001",
		"current_value":     "80",
		"threshold_percent": "5",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"alert_created":true`)
	require.NotNil(t, f.compared.ThresholdPercent)
	assert.True(t, f.compared.ThresholdPercent.Equal(decimal.NewFromInt(5)))
}

func TestCompareSnapshot_DefaultThreshold(t *testing.T) {
	t.Parallel()

	f := &fakeSnapshots{result: &domain.CompareResult{Message: "no prior data, stored baseline"}}
	api := newSnapshotsAPI(t, f)

	resp := api.Post("/api/v1/snapshots/compare", map[string]any{
		"asin":          "B0OURS0001",
		"current_value": "80",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Nil(t, f.compared.ThresholdPercent)
	assert.Contains(t, resp.Body.String(), "stored baseline")
}
