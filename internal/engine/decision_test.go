package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/donaldgifford/competitive-price-monitor/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/competitive-price-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

func TestUndercutSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  string
		want domain.Severity
	}{
		{"45", domain.SeverityCritical},
		{"30", domain.SeverityCritical},
		{"29.99", domain.SeverityHigh},
		{"20", domain.SeverityHigh},
		{"10", domain.SeverityMedium},
		{"9.5", domain.SeverityLow},
		{"0", domain.SeverityLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UndercutSeverity(dec(tt.pct)), "pct=%s", tt.pct)
	}
}

func TestRankSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pct  string
		diff int64
		want domain.Severity
	}{
		{"half", "50", 500, domain.SeverityCritical},
		{"forty percent", "40", 400, domain.SeverityHigh},
		{"twenty five", "25", 5, domain.SeverityHigh},
		{"small pct large diff", "2", 10, domain.SeverityMedium},
		{"small", "2", 9, domain.SeverityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RankSeverity(dec(tt.pct), tt.diff))
		})
	}
}

func TestGenericPriceSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  string
		want domain.Severity
	}{
		{"-35", domain.SeverityCritical},
		{"30", domain.SeverityCritical},
		{"20", domain.SeverityHigh},
		{"-15", domain.SeverityHigh},
		{"5", domain.SeverityMedium},
		{"4.99", domain.SeverityLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenericPriceSeverity(dec(tt.pct)), "pct=%s", tt.pct)
	}
}

func TestGenericRankSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct, diff string
		want      domain.Severity
	}{
		{"100", "5", domain.SeverityCritical},
		{"10", "-50", domain.SeverityCritical},
		{"50", "1", domain.SeverityHigh},
		{"1", "20", domain.SeverityHigh},
		{"-25", "1", domain.SeverityMedium},
		{"1", "10", domain.SeverityMedium},
		{"24", "9", domain.SeverityLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenericRankSeverity(dec(tt.pct), dec(tt.diff)), "pct=%s diff=%s", tt.pct, tt.diff)
	}
}

func TestGenericAlertType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.AlertSignificantChange, GenericAlertType(dec("-30"), dec("-30")))
	assert.Equal(t, domain.AlertSignificantChange, GenericAlertType(dec("25"), dec("25")))
	assert.Equal(t, domain.AlertPriceIncrease, GenericAlertType(dec("10"), dec("10")))
	assert.Equal(t, domain.AlertPriceDecrease, GenericAlertType(dec("-10"), dec("-10")))
}

func undercutComparison() *domain.PriceComparison {
	return undercut(
		&domain.PriceObservation{ASIN: "B0OURS0001", SellerSKU: "SKU-1", Amount: dec("100")},
		&domain.PriceObservation{ASIN: "B0COMP0001", Amount: dec("80")},
	)
}

func TestDecidePriceAlert_DedupWithinWindow(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))
	cmp := undercutComparison()

	var persisted []*domain.Alert
	ms.EXPECT().
		CreateAlertIfAbsent(mock.Anything, mock.AnythingOfType("*domain.Alert"), testSince, testBucket).
		RunAndReturn(func(_ context.Context, a *domain.Alert, _, _ time.Time) (bool, error) {
			persisted = append(persisted, a)
			return len(persisted) == 1, nil
		}).Twice()

	created, err := eng.DecidePriceAlert(context.Background(), cmp, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = eng.DecidePriceAlert(context.Background(), cmp, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.False(t, created)

	a := persisted[0]
	assert.Equal(t, domain.AlertCompetitorUndercut, a.AlertType)
	assert.Equal(t, domain.SeverityHigh, a.Priority)
	assert.True(t, a.OldValue.Equal(dec("100")))
	assert.True(t, a.NewValue.Equal(dec("80")))
	assert.True(t, a.ValueChange.Equal(dec("20")))
	assert.True(t, a.ChangePercent.Equal(dec("20")))
	assert.Equal(t, "B0COMP0001", a.CompetitorName)
	assert.Equal(t, "USD", a.Currency)
	assert.Equal(t, "Competitor B0COMP0001 is 20.0% cheaper (80.00 vs our 100.00)", a.Message)
	assert.Nil(t, a.ProductName)
}

func TestDecidePriceAlert_NoOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cmp       *domain.PriceComparison
		threshold string
	}{
		{"nil comparison", nil, "0"},
		{"below threshold", undercutComparison(), "25"},
		{
			"competitor not cheaper",
			&domain.PriceComparison{OurASIN: "B0OURS0001", PriceDifference: dec("-5"), PercentageDifference: dec("-5")},
			"0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

			created, err := eng.DecidePriceAlert(context.Background(), tt.cmp, dec(tt.threshold))
			require.NoError(t, err)
			assert.False(t, created)
		})
	}
}

func TestDecidePriceAlert_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().CreateAlertIfAbsent(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("db down")).Once()

	created, err := eng.DecidePriceAlert(context.Background(), undercutComparison(), decimal.Zero)
	require.Error(t, err)
	assert.False(t, created)
}

func TestDecideRankAlert_Escalated(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	cmp := outranked(rankUnit{asin: "B0OURS0001", sellerSKU: "SKU-1", ranks: []int64{1000}},
		tenCompetitors(8), eng.escalationRatio)
	require.NotNil(t, cmp)

	ms.EXPECT().CreateAlertIfAbsent(mock.Anything, mock.MatchedBy(func(a *domain.Alert) bool {
		return a.AlertType == domain.AlertRankComparison &&
			a.Priority == domain.SeverityCritical &&
			a.Currency == domain.CurrencyRank &&
			a.OldValue.Equal(dec("1000")) &&
			a.NewValue.Equal(dec("600")) &&
			a.ValueChange.Equal(dec("400")) &&
			a.CompetitorName == "Best: B0COMP0001 (8/10 ahead)" &&
			a.Message == "High: Competitor ranked considerably higher (600 vs our 1000) | 8/10 competitors ahead"
	}), testSince, testBucket).Return(true, nil).Once()

	created, err := eng.DecideRankAlert(context.Background(), cmp, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestDecideRankAlert_NotOutranked(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	created, err := eng.DecideRankAlert(context.Background(), &domain.RankComparison{
		OurBestRank:        100,
		CompetitorBestRank: 100,
	}, decimal.Zero)
	require.NoError(t, err)
	assert.False(t, created)
}
