package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/donaldgifford/competitive-price-monitor/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/competitive-price-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// tenCompetitors returns ten competitor best ranks relative to an own rank of
// 1000. The first ahead of them rank better than 1000, the best at 600.
func tenCompetitors(ahead int) map[string]int64 {
	out := make(map[string]int64, 10)
	for i := range 10 {
		asin := fmt.Sprintf("B0COMP%04d", i+1)
		if i < ahead {
			out[asin] = int64(600 + i*10)
		} else {
			out[asin] = int64(1500 + i*10)
		}
	}
	return out
}

func TestOutranked(t *testing.T) {
	t.Parallel()

	ratio := defaultEscalationRatio
	tests := []struct {
		name          string
		ranks         []int64
		competitors   map[string]int64
		wantNil       bool
		wantSeverity  domain.Severity
		wantEscalated bool
		wantAhead     int
	}{
		{
			name:          "escalated to critical with eight of ten ahead",
			ranks:         []int64{1000},
			competitors:   tenCompetitors(8),
			wantSeverity:  domain.SeverityCritical,
			wantEscalated: true,
			wantAhead:     8,
		},
		{
			name:          "seven of ten ahead still escalates",
			ranks:         []int64{1000},
			competitors:   tenCompetitors(7),
			wantSeverity:  domain.SeverityCritical,
			wantEscalated: true,
			wantAhead:     7,
		},
		{
			name:         "five of ten ahead keeps base tier",
			ranks:        []int64{1000},
			competitors:  tenCompetitors(5),
			wantSeverity: domain.SeverityHigh,
			wantAhead:    5,
		},
		{
			name:        "competitor equal is not outranked",
			ranks:       []int64{600},
			competitors: map[string]int64{"B0COMP0001": 600},
			wantNil:     true,
		},
		{
			name:        "no competitors",
			ranks:       []int64{600},
			competitors: map[string]int64{},
			wantNil:     true,
		},
		{
			name:          "ahead counted against worst rank",
			ranks:         []int64{90, 200},
			competitors:   map[string]int64{"B0COMP0001": 80, "B0COMP0002": 150},
			wantSeverity:  domain.SeverityHigh,
			wantEscalated: true,
			wantAhead:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := outranked(rankUnit{asin: "B0OURS0001", ranks: tt.ranks}, tt.competitors, ratio)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantSeverity, got.Severity)
			assert.Equal(t, tt.wantEscalated, got.Escalated)
			assert.Equal(t, tt.wantAhead, got.CompetitorsAhead)
			assert.Equal(t, len(tt.competitors), got.CompetitorsConsidered)
		})
	}
}

func TestOutranked_EscalatesHighToCritical(t *testing.T) {
	t.Parallel()

	got := outranked(rankUnit{asin: "B0OURS0001", ranks: []int64{1000}}, tenCompetitors(8), defaultEscalationRatio)
	require.NotNil(t, got)
	assert.Equal(t, int64(1000), got.OurBestRank)
	assert.Equal(t, int64(600), got.CompetitorBestRank)
	assert.Equal(t, "B0COMP0001", got.BestCompetitorASIN)
	assert.Equal(t, int64(400), got.RankDifference)
	assert.True(t, got.PercentageDifference.Equal(dec("40")))
	assert.Equal(t, domain.SeverityHigh, RankSeverity(got.PercentageDifference, got.RankDifference))
	assert.Equal(t, domain.SeverityCritical, got.Severity)
}

func TestGroupOwnRanks(t *testing.T) {
	t.Parallel()

	units := groupOwnRanks([]domain.RankObservation{
		{ASIN: "A1", SellerSKU: "", Rank: 50},
		{ASIN: "A2", SellerSKU: "S2", Rank: 7},
		{ASIN: "A1", SellerSKU: "S1", Rank: 40},
		{ASIN: "A1", Rank: 0},
		{ASIN: "", Rank: 3},
	})

	require.Len(t, units, 2)
	assert.Equal(t, rankUnit{asin: "A1", sellerSKU: "S1", ranks: []int64{50, 40}}, units[0])
	assert.Equal(t, rankUnit{asin: "A2", sellerSKU: "S2", ranks: []int64{7}}, units[1])
}

func TestBestRanks(t *testing.T) {
	t.Parallel()

	got := bestRanks([]domain.RankObservation{
		{ASIN: "C1", Rank: 300},
		{ASIN: "C1", Rank: 250},
		{ASIN: "C2", Rank: -1},
		{ASIN: "C3", Rank: 900},
	})
	assert.Equal(t, map[string]int64{"C1": 250, "C3": 900}, got)
}

func TestCompareRanks_CoolDownSkipsCompetitorLookup(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))
	sel := domain.ProductSelection{ASINs: []string{"B0OURS0001"}}

	ms.EXPECT().ListOwnRanks(mock.Anything, sel).Return([]domain.RankObservation{
		{ASIN: "B0OURS0001", SellerSKU: "SKU-1", Rank: 1000},
	}, nil).Once()
	ms.EXPECT().HasRecentAlert(mock.Anything, "B0OURS0001", domain.AlertRankComparison, testSince).
		Return(true, nil).Once()

	got, err := eng.CompareRanks(context.Background(), sel)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCompareRanks_Outranked(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))
	sel := domain.ProductSelection{}

	ms.EXPECT().ListOwnRanks(mock.Anything, sel).Return([]domain.RankObservation{
		{ASIN: "B0OURS0001", SellerSKU: "SKU-1", Rank: 1000},
		{ASIN: "B0OURS0002", SellerSKU: "SKU-2", Rank: 5},
	}, nil).Once()
	ms.EXPECT().HasRecentAlert(mock.Anything, mock.Anything, domain.AlertRankComparison, mock.Anything).
		Return(false, nil).Twice()
	ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-1").Return([]domain.ProductMapping{
		{CompetitorASIN: "B0COMP0001", IsActive: true},
	}, nil).Once()
	ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-2").Return(nil, errors.New("boom")).Once()
	ms.EXPECT().ListCompetitorRanks(mock.Anything, []string{"B0COMP0001"}).Return([]domain.RankObservation{
		{ASIN: "B0COMP0001", Rank: 400},
	}, nil).Once()

	got, err := eng.CompareRanks(context.Background(), sel)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B0OURS0001", got[0].OurASIN)
	assert.Equal(t, domain.SeverityCritical, got[0].Severity)
}
