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
	"github.com/donaldgifford/competitive-price-monitor/internal/store"
	storeMocks "github.com/donaldgifford/competitive-price-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

func TestCreatePriceAlert_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		oldValue     string
		newValue     string
		currency     string
		wantType     domain.AlertType
		wantPriority domain.Severity
	}{
		{"large drop", "100", "70", "usd", domain.AlertSignificantChange, domain.SeverityCritical},
		{"moderate increase", "100", "118", "", domain.AlertPriceIncrease, domain.SeverityHigh},
		{"small decrease", "100", "94", "USD", domain.AlertPriceDecrease, domain.SeverityMedium},
		{"rank doubled", "40", "80", "RANK", domain.AlertRankChange, domain.SeverityCritical},
		{"rank small move", "100", "88", "rank", domain.AlertRankChange, domain.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

			ms.EXPECT().CreateAlert(mock.Anything, mock.AnythingOfType("*domain.Alert")).Return(nil).Once()

			a, err := eng.CreatePriceAlert(context.Background(), GenericAlertInput{
				ASIN:        "B0OURS0001",
				ProductName: "USB-C Dock",
				OldValue:    dec(tt.oldValue),
				NewValue:    dec(tt.newValue),
				Currency:    tt.currency,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, a.AlertType)
			assert.Equal(t, tt.wantPriority, a.Priority)
			assert.Equal(t, "USB-C Dock", a.DisplayName())
			assert.True(t, a.ValueChange.Equal(dec(tt.newValue).Sub(dec(tt.oldValue))))
		})
	}
}

func TestCreatePriceAlert_InvalidInput(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))

	_, err := eng.CreatePriceAlert(context.Background(), GenericAlertInput{OldValue: dec("1")})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = eng.CreatePriceAlert(context.Background(), GenericAlertInput{ASIN: "B0OURS0001"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompareAndAlert_NoPriorSnapshot(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetSnapshot(mock.Anything, "B0OURS0001").Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().RecordSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.Snapshot) bool {
		return s.ASIN == "B0OURS0001" &&
			s.Value.Equal(dec("42.50")) &&
			s.ValueType == domain.ValueCurrentPrice &&
			s.DataSource == "compare" &&
			s.RecordedAt.Equal(testNow)
	})).Return(nil).Once()

	res, err := eng.CompareAndAlert(context.Background(), CompareInput{
		ASIN:         "B0OURS0001",
		CurrentValue: dec("42.50"),
	})
	require.NoError(t, err)
	assert.False(t, res.AlertCreated)
	assert.Equal(t, "no prior data, stored baseline", res.Message)
	assert.Nil(t, res.PreviousValue)
}

func TestCompareAndAlert_ChangeAboveThreshold(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	var writes []string
	ms.EXPECT().GetSnapshot(mock.Anything, "B0OURS0001").
		Return(&domain.Snapshot{ASIN: "B0OURS0001", Value: dec("50"), Currency: "USD"}, nil).Once()
	ms.EXPECT().RecordSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.Snapshot) bool {
		return s.Value.Equal(dec("40"))
	})).Run(func(context.Context, *domain.Snapshot) {
		writes = append(writes, "snapshot")
	}).Return(nil).Once()
	ms.EXPECT().CreateAlert(mock.Anything, mock.MatchedBy(func(a *domain.Alert) bool {
		return a.OldValue.Equal(dec("50")) &&
			a.NewValue.Equal(dec("40")) &&
			a.AlertType == domain.AlertPriceDecrease &&
			a.Priority == domain.SeverityHigh &&
			a.ThresholdTriggered.Equal(dec("10")) &&
			a.CompetitorName == "B0COMP0001"
	})).Run(func(context.Context, *domain.Alert) {
		writes = append(writes, "alert")
	}).Return(nil).Once()

	res, err := eng.CompareAndAlert(context.Background(), CompareInput{
		ASIN:           "B0OURS0001",
		CurrentValue:   dec("40"),
		ProductName:    "USB-C Dock",
		CompetitorName: "B0COMP0001",
	})
	require.NoError(t, err)
	assert.True(t, res.AlertCreated)
	require.NotNil(t, res.Alert)
	require.NotNil(t, res.PreviousValue)
	assert.True(t, res.PreviousValue.Equal(dec("50")))
	assert.True(t, res.ChangePercent.Equal(dec("20")))
	assert.Equal(t, []string{"snapshot", "alert"}, writes)
}

func TestCompareAndAlert_SnapshotWriteErrorCreatesNoAlert(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetSnapshot(mock.Anything, "B0OURS0001").
		Return(&domain.Snapshot{ASIN: "B0OURS0001", Value: dec("50"), Currency: "USD"}, nil).Once()
	ms.EXPECT().RecordSnapshot(mock.Anything, mock.Anything).
		Return(errors.New("serialization failure")).Once()

	res, err := eng.CompareAndAlert(context.Background(), CompareInput{
		ASIN:         "B0OURS0001",
		CurrentValue: dec("40"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording snapshot for B0OURS0001")
	assert.Nil(t, res)
	ms.AssertNotCalled(t, "CreateAlert", mock.Anything, mock.Anything)
}

func TestCompareAndAlert_BelowThreshold(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))
	threshold := decimal.NewFromInt(25)

	ms.EXPECT().GetSnapshot(mock.Anything, "B0OURS0001").
		Return(&domain.Snapshot{Value: dec("50")}, nil).Once()
	ms.EXPECT().RecordSnapshot(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := eng.CompareAndAlert(context.Background(), CompareInput{
		ASIN:             "B0OURS0001",
		CurrentValue:     dec("40"),
		ThresholdPercent: &threshold,
	})
	require.NoError(t, err)
	assert.False(t, res.AlertCreated)
}

func TestCompareAndAlert_RankUsesRankValueType(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetSnapshot(mock.Anything, "B0OURS0001").Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().RecordSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.Snapshot) bool {
		return s.Currency == domain.CurrencyRank && s.ValueType == domain.ValueOurRank
	})).Return(nil).Once()

	_, err := eng.CompareAndAlert(context.Background(), CompareInput{
		ASIN:         "B0OURS0001",
		CurrentValue: dec("1200"),
		Currency:     "rank",
	})
	require.NoError(t, err)
}

func TestCompareAndAlert_SnapshotReadError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetSnapshot(mock.Anything, "B0OURS0001").Return(nil, errors.New("db down")).Once()

	_, err := eng.CompareAndAlert(context.Background(), CompareInput{ASIN: "B0OURS0001", CurrentValue: dec("1")})
	require.Error(t, err)
}

func TestHistory_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().
		ListSnapshotHistory(mock.Anything, "B0OURS0001", store.HistoryPrice, testNow.Add(-30*24*time.Hour), 100).
		Return([]domain.Snapshot{{ASIN: "B0OURS0001"}}, nil).Once()
	ms.EXPECT().
		ListSnapshotHistory(mock.Anything, "B0OURS0001", store.HistoryRank, testNow.Add(-7*24*time.Hour), 5).
		Return(nil, nil).Once()

	prices, err := eng.PriceHistory(context.Background(), "B0OURS0001", 0, 0)
	require.NoError(t, err)
	assert.Len(t, prices, 1)

	ranks, err := eng.RankHistory(context.Background(), "B0OURS0001", 7, 5)
	require.NoError(t, err)
	assert.Empty(t, ranks)

	_, err = eng.PriceHistory(context.Background(), "", 0, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestInitializeMonitoring(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))
	asins := []string{"A1", "A2", "A3"}

	ms.EXPECT().LatestOwnPrices(mock.Anything, domain.ProductSelection{ASINs: asins}).
		Return([]domain.PriceObservation{
			{ASIN: "A1", SellerSKU: "S1", Amount: dec("10"), Currency: "USD"},
			{ASIN: "A3", SellerSKU: "S3", Amount: dec("30"), Currency: "USD"},
		}, nil).Once()
	ms.EXPECT().RecordSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.Snapshot) bool {
		return s.ASIN == "A1" && s.ValueType == domain.ValueBaselinePrice && s.DataSource == "initialization"
	})).Return(nil).Once()
	ms.EXPECT().RecordSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.Snapshot) bool {
		return s.ASIN == "A3"
	})).Return(errors.New("insert failed")).Once()

	res, err := eng.InitializeMonitoring(context.Background(), asins)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Initialized)
	assert.Equal(t, 2, res.Failed)
}

func TestInitializeFromObservations_Batches(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	asins := make([]string, 0, 12)
	for i := range 12 {
		asins = append(asins, string(rune('A'+i)))
	}

	ms.EXPECT().ListUnsnapshottedOwnASINs(mock.Anything).Return(asins, nil).Once()
	ms.EXPECT().LatestOwnPrices(mock.Anything, domain.ProductSelection{ASINs: asins[:10]}).Return(nil, nil).Once()
	ms.EXPECT().LatestOwnPrices(mock.Anything, domain.ProductSelection{ASINs: asins[10:]}).
		Return(nil, errors.New("db down")).Once()

	res, err := eng.InitializeFromObservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Initialized)
	assert.Equal(t, 12, res.Failed)
}
