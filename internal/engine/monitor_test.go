package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/donaldgifford/competitive-price-monitor/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/competitive-price-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

func TestRunMonitoringCycle(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t), WithConcurrency(2))
	cfg := RunConfigFor(nil, []string{"SKU-1", "SKU-2"}, 5, 0)

	ms.EXPECT().LatestOwnPrices(mock.Anything, cfg.Selection).Return([]domain.PriceObservation{
		{ASIN: "B0OURS0001", SellerSKU: "SKU-1", Amount: dec("100")},
		{ASIN: "B0OURS0002", SellerSKU: "SKU-2", Amount: dec("20")},
	}, nil).Once()
	ms.EXPECT().ListOwnRanks(mock.Anything, cfg.Selection).Return([]domain.RankObservation{
		{ASIN: "B0OURS0001", SellerSKU: "SKU-1", Rank: 1000},
	}, nil).Once()

	ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-1").Return([]domain.ProductMapping{
		{CompetitorASIN: "B0COMP0001", IsActive: true},
	}, nil).Twice()
	ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-2").Return(nil, errors.New("timeout")).Once()
	ms.EXPECT().TouchMappings(mock.Anything, "SKU-1", testNow).Return(nil).Twice()

	ms.EXPECT().ListCompetitorPrices(mock.Anything, []string{"B0COMP0001"}).
		Return([]domain.PriceObservation{{ASIN: "B0COMP0001", Amount: dec("80")}}, nil).Once()
	ms.EXPECT().HasRecentAlert(mock.Anything, "B0OURS0001", domain.AlertRankComparison, testSince).
		Return(false, nil).Once()
	ms.EXPECT().ListCompetitorRanks(mock.Anything, []string{"B0COMP0001"}).
		Return([]domain.RankObservation{{ASIN: "B0COMP0001", Rank: 600}}, nil).Once()

	ms.EXPECT().InsertComparison(mock.Anything, mock.MatchedBy(func(c *domain.ComparisonRecord) bool {
		return c.Kind == comparisonKindPrice && c.CompetitorValue.Equal(dec("80"))
	})).Return(nil).Once()
	ms.EXPECT().InsertComparison(mock.Anything, mock.MatchedBy(func(c *domain.ComparisonRecord) bool {
		return c.Kind == comparisonKindRank && c.Difference.Equal(dec("400"))
	})).Return(errors.New("history table missing")).Once()

	ms.EXPECT().CreateAlertIfAbsent(mock.Anything, mock.MatchedBy(func(a *domain.Alert) bool {
		return a.AlertType == domain.AlertCompetitorUndercut
	}), testSince, testBucket).Return(true, nil).Once()
	ms.EXPECT().CreateAlertIfAbsent(mock.Anything, mock.MatchedBy(func(a *domain.Alert) bool {
		return a.AlertType == domain.AlertRankComparison
	}), testSince, testBucket).Return(false, nil).Once()

	res, err := eng.RunMonitoringCycle(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.PriceAlertsCreated)
	assert.Equal(t, 0, res.RankAlertsCreated)
}

func TestRunMonitoringCycle_LoadFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().LatestOwnPrices(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := eng.RunMonitoringCycle(context.Background(), domain.RunConfig{})
	require.Error(t, err)
}

func TestRunMonitoringCycle_Empty(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().LatestOwnPrices(mock.Anything, mock.Anything).Return(nil, nil).Once()
	ms.EXPECT().ListOwnRanks(mock.Anything, mock.Anything).Return(nil, nil).Once()

	res, err := eng.RunMonitoringCycle(context.Background(), domain.RunConfig{ThresholdPercent: decimal.Zero})
	require.NoError(t, err)
	assert.Zero(t, res.Processed)
	assert.Zero(t, res.Failed)
}
