package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
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

var (
	testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	// testSince and testBucket are the dedup cutoff and slot start for
	// testNow under the default 24h window.
	testSince  = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testBucket = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time { return testNow }

// newTestEngine returns an engine with a quiet logger, a fixed clock and no
// name resolvers, so tests only set up the store calls they exercise.
func newTestEngine(
	s *storeMocks.MockStore,
	n *notifyMocks.MockNotifier,
	opts ...EngineOption,
) *Engine {
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithClock(fixedClock),
		WithNameResolvers(),
	}
	return NewEngine(s, n, append(base, opts...)...)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := NewEngine(ms, mn)

	assert.Equal(t, defaultConcurrency, eng.concurrency)
	assert.Equal(t, 24*time.Hour, eng.dedupWindow)
	assert.True(t, eng.escalationRatio.Equal(dec("0.7")))
	assert.True(t, eng.compareThreshold.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, domain.SeverityHigh, eng.minSeverity)
	assert.Equal(t, DefaultRetentionPolicy(), eng.retention)
	assert.Len(t, eng.resolvers, 2)
	assert.NotNil(t, eng.alertCounter)
}

func TestNewEngine_Options(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := NewEngine(ms, mn,
		WithConcurrency(2),
		WithDedupWindow(time.Hour),
		WithEscalationRatio(0.5),
		WithCompareThreshold(15),
		WithMinNotifySeverity(domain.SeverityCritical),
		WithRetention(RetentionPolicy{AlertDays: 60}),
	)

	assert.Equal(t, 2, eng.concurrency)
	assert.Equal(t, time.Hour, eng.dedupWindow)
	assert.True(t, eng.escalationRatio.Equal(dec("0.5")))
	assert.True(t, eng.compareThreshold.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, domain.SeverityCritical, eng.minSeverity)
	assert.Equal(t, RetentionPolicy{AlertDays: 60, HistoryDays: 365, ObservationDays: 30}, eng.retention)
}

func TestNewEngine_IgnoresInvalidOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := NewEngine(ms, mn,
		WithConcurrency(0),
		WithDedupWindow(-time.Minute),
		WithEscalationRatio(0),
		WithMinNotifySeverity("urgent"),
	)

	assert.Equal(t, defaultConcurrency, eng.concurrency)
	assert.Equal(t, defaultDedupWindow, eng.dedupWindow)
	assert.True(t, eng.escalationRatio.Equal(defaultEscalationRatio))
	assert.Equal(t, domain.SeverityHigh, eng.minSeverity)
}

func TestDedupSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		window     time.Duration
		wantSince  time.Time
		wantBucket time.Time
	}{
		{
			name:       "default day window",
			window:     24 * time.Hour,
			wantSince:  testSince,
			wantBucket: testBucket,
		},
		{
			name:       "six hour window",
			window:     6 * time.Hour,
			wantSince:  time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
			wantBucket: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		},
		{
			name:       "seven hour window",
			window:     7 * time.Hour,
			wantSince:  time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC),
			wantBucket: testNow.Truncate(7 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t),
				WithDedupWindow(tt.window))

			since, bucket := eng.dedupSlot()
			assert.Equal(t, tt.wantSince, since)
			assert.Equal(t, tt.wantBucket, bucket)
			// A live alert in the same slot is always inside the window.
			assert.False(t, bucket.Before(since))
		})
	}
}

func TestResolveCompetitors(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-1").Return([]domain.ProductMapping{
		{CompetitorASIN: "B0COMP0001", Priority: 1, IsActive: true},
		{CompetitorASIN: "B0COMP0002", Priority: 2, IsActive: false},
		{CompetitorASIN: "B0COMP0001", Priority: 3, IsActive: true},
		{CompetitorASIN: "B0COMP0003", Priority: 3, IsActive: true},
	}, nil).Once()

	got, err := eng.ResolveCompetitors(context.Background(), "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B0COMP0001", "B0COMP0003"}, got)
}

func TestResolveCompetitors_NoMappings(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-9").Return(nil, nil).Once()

	got, err := eng.ResolveCompetitors(context.Background(), "SKU-9")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveMappings_ActiveOnly(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListMappingsByASIN(mock.Anything, "B0OURS0001").Return([]domain.ProductMapping{
		{ID: "m1", CompetitorASIN: "B0COMP0001", IsActive: true},
		{ID: "m2", CompetitorASIN: "B0COMP0002", IsActive: false},
	}, nil).Once()

	got, err := eng.ResolveMappings(context.Background(), "B0OURS0001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}

func TestCompetitorsFor_FallsBackToASIN(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListMappingsBySKU(mock.Anything, "SKU-1").Return(nil, nil).Once()
	ms.EXPECT().ListMappingsByASIN(mock.Anything, "B0OURS0001").Return([]domain.ProductMapping{
		{CompetitorASIN: "B0COMP0001", IsActive: true},
	}, nil).Once()

	got, err := eng.competitorsFor(context.Background(), "B0OURS0001", "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B0COMP0001"}, got)
}

func TestNameResolverChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(ms *storeMocks.MockStore)
		want  *string
	}{
		{
			name: "catalog hit",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().GetCatalogProduct(mock.Anything, "B0OURS0001").
					Return(&domain.CatalogProduct{ItemName: "USB-C Dock"}, nil).Once()
			},
			want: ptr("USB-C Dock"),
		},
		{
			name: "catalog miss falls back to unified name",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().GetCatalogProduct(mock.Anything, "B0OURS0001").
					Return(nil, store.ErrNotFound).Once()
				ms.EXPECT().FindOrderMapping(mock.Anything, "B0OURS0001", "SKU-1").
					Return(&domain.OrderMapping{UnifiedName: "Dock Pro", SourceName: "Dock"}, nil).Once()
			},
			want: ptr("Dock Pro"),
		},
		{
			name: "source name when unified is empty",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().GetCatalogProduct(mock.Anything, "B0OURS0001").
					Return(&domain.CatalogProduct{}, nil).Once()
				ms.EXPECT().FindOrderMapping(mock.Anything, "B0OURS0001", "SKU-1").
					Return(&domain.OrderMapping{SourceName: "Dock"}, nil).Once()
			},
			want: ptr("Dock"),
		},
		{
			name: "lookup errors degrade to nil",
			setup: func(ms *storeMocks.MockStore) {
				ms.EXPECT().GetCatalogProduct(mock.Anything, "B0OURS0001").
					Return(nil, errors.New("connection reset")).Once()
				ms.EXPECT().FindOrderMapping(mock.Anything, "B0OURS0001", "SKU-1").
					Return(nil, store.ErrNotFound).Once()
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setup(ms)
			eng := NewEngine(ms, notifyMocks.NewMockNotifier(t), WithLogger(quietLogger()))

			got := eng.resolveName(context.Background(), "B0OURS0001", "SKU-1")
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }
