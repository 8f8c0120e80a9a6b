package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/competitive-price-monitor/internal/api/handlers"
	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// fakeIngest is a test double for ObservationsProvider.
type fakeIngest struct {
	prices []domain.PriceObservation
	ranks  []domain.RankObservation
}

func (f *fakeIngest) IngestPrices(_ context.Context, obs []domain.PriceObservation) *engine.IngestResult {
	f.prices = obs
	return &engine.IngestResult{Accepted: len(obs)}
}

func (f *fakeIngest) IngestRanks(_ context.Context, obs []domain.RankObservation) *engine.IngestResult {
	f.ranks = obs
	return &engine.IngestResult{Accepted: len(obs)}
}

func newObservationsAPI(t *testing.T, f *fakeIngest) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterObservationRoutes(api, handlers.NewObservationsHandler(f))
	return api
}

func TestIngestPrices(t *testing.T) {
	t.Parallel()

	f := &fakeIngest{}
	api := newObservationsAPI(t, f)

	resp := api.Post("/api/v1/observations/prices", map[string]any{
		"observations": []map[string]any{
			{"asin": "B0OURS0001", "amount": "19.99", "belongs_to_requester": true},
			{"asin": "B0COMP0001", "amount": "18.49", "side": "competitor"},
			{"asin": "B0COMP0002", "amount": "cheap"},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var got engine.IngestResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, engine.IngestResult{Accepted: 2, Failed: 1}, got)
	require.Len(t, f.prices, 2)
	assert.True(t, f.prices[0].BelongsToRequester)
	assert.Equal(t, domain.SideCompetitor, f.prices[1].Side)
}

func TestIngestRanks(t *testing.T) {
	t.Parallel()

	f := &fakeIngest{}
	api := newObservationsAPI(t, f)

	resp := api.Post("/api/v1/observations/ranks", map[string]any{
		"observations": []map[string]any{
			{"asin": "B0OURS0001", "rank": 1000, "side": "own", "category": "Electronics"},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, f.ranks, 1)
	assert.Equal(t, int64(1000), f.ranks[0].Rank)
	assert.Equal(t, domain.SideOwn, f.ranks[0].Side)
}

func TestIngestRanks_RejectsEmptyBatch(t *testing.T) {
	t.Parallel()

	api := newObservationsAPI(t, &fakeIngest{})

	resp := api.Post("/api/v1/observations/ranks", map[string]any{"observations": []any{}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
