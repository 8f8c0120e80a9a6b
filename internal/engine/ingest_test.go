package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/donaldgifford/competitive-price-monitor/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/competitive-price-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

func TestIngestPrices(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().InsertPriceObservation(mock.Anything, mock.MatchedBy(func(o *domain.PriceObservation) bool {
		return o.ASIN == "B0OURS0001" && o.Side == domain.SideOwn && o.Currency == "EUR"
	})).Return(nil).Once()
	ms.EXPECT().InsertPriceObservation(mock.Anything, mock.MatchedBy(func(o *domain.PriceObservation) bool {
		return o.ASIN == "B0COMP0001"
	})).Return(errors.New("insert failed")).Once()

	res := eng.IngestPrices(context.Background(), []domain.PriceObservation{
		{ASIN: "B0OURS0001", Amount: dec("19.99"), Currency: "eur", BelongsToRequester: true},
		{ASIN: "B0COMP0001", Amount: dec("18.50")},
		{ASIN: "", Amount: dec("5")},
		{ASIN: "B0COMP0002", Amount: dec("0")},
		{ASIN: "B0COMP0003", Amount: dec("5"), Side: "mine"},
	})

	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 4, res.Failed)
}

func TestIngestRanks(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().InsertRankObservation(mock.Anything, mock.MatchedBy(func(o *domain.RankObservation) bool {
		return o.Side == domain.SideCompetitor
	})).Return(nil).Once()
	ms.EXPECT().InsertRankObservation(mock.Anything, mock.MatchedBy(func(o *domain.RankObservation) bool {
		return o.Side == domain.SideOwn
	})).Return(nil).Once()

	res := eng.IngestRanks(context.Background(), []domain.RankObservation{
		{ASIN: "B0COMP0001", Rank: 600},
		{ASIN: "B0OURS0001", Rank: 1000, Side: domain.SideOwn},
		{ASIN: "B0OURS0001", Rank: 0},
	})

	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, 1, res.Failed)
}

func TestListMappings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sku     string
		asin    string
		setup   func(ms *storeMocks.MockStore)
		wantLen int
		wantErr error
	}{
		{
			name: "by sku",
			sku:  "SKU-1",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-1").Return([]domain.ProductMapping{
					{ID: "m1", IsActive: true},
					{ID: "m2", IsActive: false},
				}, nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "by asin",
			asin: "B0OURS0001",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().ListMappingsByASIN(mock.Anything, "B0OURS0001").Return([]domain.ProductMapping{
					{ID: "m1", IsActive: true},
					{ID: "m3", IsActive: true},
				}, nil).Once()
			},
			wantLen: 2,
		},
		{
			name:    "neither",
			setup:   func(*storeMocks.MockStore) {},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setup(ms)
			eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

			got, err := eng.ListMappings(context.Background(), tt.sku, tt.asin)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestSaveMapping(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().UpsertMapping(mock.Anything, mock.MatchedBy(func(m *domain.ProductMapping) bool {
		return m.Priority == 2
	})).Return(nil).Once()

	require.NoError(t, eng.SaveMapping(context.Background(), &domain.ProductMapping{
		OurSellerSKU:   "SKU-1",
		CompetitorASIN: "B0COMP0001",
		IsActive:       true,
	}))

	err := eng.SaveMapping(context.Background(), &domain.ProductMapping{OurSellerSKU: "SKU-1"})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = eng.SaveMapping(context.Background(), &domain.ProductMapping{
		OurSellerSKU:   "SKU-1",
		CompetitorASIN: "B0COMP0001",
		Priority:       7,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
