package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/donaldgifford/competitive-price-monitor/internal/notify/mocks"
	"github.com/donaldgifford/competitive-price-monitor/internal/store"
	storeMocks "github.com/donaldgifford/competitive-price-monitor/internal/store/mocks"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const testAlertID = "6f1c2b8e-4a7d-4e0f-9b3a-2d5c8e1f7a90"

func TestListAlerts(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListAlerts(mock.Anything, &store.AlertQuery{Filter: domain.FilterUnread, Limit: 25, Offset: 50}).
		Return([]domain.Alert{{ID: testAlertID}}, nil).Once()
	ms.EXPECT().CountAlerts(mock.Anything).
		Return(&domain.AlertCounts{Total: 80, Unread: 51}, nil).Once()

	page, err := eng.ListAlerts(context.Background(), domain.FilterUnread, 25, 50)
	require.NoError(t, err)
	assert.Len(t, page.Alerts, 1)
	assert.Equal(t, 80, page.Counts.Total)
	assert.Equal(t, domain.FilterUnread, page.Filter)
}

func TestListAlerts_EmptyFilterMeansAll(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListAlerts(mock.Anything, &store.AlertQuery{Filter: domain.FilterAll}).Return(nil, nil).Once()
	ms.EXPECT().CountAlerts(mock.Anything).Return(&domain.AlertCounts{}, nil).Once()

	page, err := eng.ListAlerts(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, page.Alerts)
	assert.Equal(t, domain.FilterAll, page.Filter)
}

func TestListAlerts_InvalidFilter(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))

	_, err := eng.ListAlerts(context.Background(), "everything", 10, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLifecycle_InvalidID(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))
	ctx := context.Background()

	_, err := eng.MarkRead(ctx, "not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = eng.Dismiss(ctx, "42")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = eng.GetAlert(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = eng.DismissMany(ctx, []string{testAlertID, "bad"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = eng.DismissMany(ctx, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkRead_NotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().MarkAlertRead(mock.Anything, testAlertID).Return(nil, store.ErrNotFound).Once()

	_, err := eng.MarkRead(context.Background(), testAlertID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLifecycle_Transitions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))
	ctx := context.Background()
	readAt := testNow

	ms.EXPECT().MarkAlertRead(mock.Anything, testAlertID).
		Return(&domain.Alert{ID: testAlertID, IsRead: true, ReadAt: &readAt}, nil).Once()
	ms.EXPECT().MarkAllAlertsRead(mock.Anything).Return(4, nil).Once()
	ms.EXPECT().DismissAlert(mock.Anything, testAlertID).
		Return(&domain.Alert{ID: testAlertID, IsDismissed: true, DismissedAt: &readAt}, nil).Once()
	ms.EXPECT().DismissAlerts(mock.Anything, []string{testAlertID}).Return(1, nil).Once()

	a, err := eng.MarkRead(ctx, testAlertID)
	require.NoError(t, err)
	assert.True(t, a.IsRead)

	n, err := eng.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	a, err = eng.Dismiss(ctx, testAlertID)
	require.NoError(t, err)
	assert.True(t, a.IsDismissed)

	n, err = eng.DismissMany(ctx, []string{testAlertID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStatistics_Windows(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	since := testNow.Add(-30 * 24 * time.Hour)
	trendSince := time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC)

	ms.EXPECT().AlertStatistics(mock.Anything, since, trendSince).Return(&domain.AlertStatistics{
		Total:      3,
		ByType:     map[string]int{"competitor_undercut": 2, "rank_comparison": 1},
		ByPriority: map[string]int{"high": 1, "critical": 2},
	}, nil).Once()

	stats, err := eng.Statistics(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, stats.WindowDays)

	sumType, sumPriority := 0, 0
	for _, n := range stats.ByType {
		sumType += n
	}
	for _, n := range stats.ByPriority {
		sumPriority += n
	}
	assert.Equal(t, stats.Total, sumType)
	assert.Equal(t, stats.Total, sumPriority)
}

func TestRankingIssues_DefaultLimit(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListRankingIssues(mock.Anything, 20).Return([]domain.Alert{{ID: testAlertID}}, nil).Once()

	got, err := eng.RankingIssues(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMonitoringStats_LastRun(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetMonitoringStats(mock.Anything, testNow.Add(-24*time.Hour)).
		Return(&domain.MonitoringStats{SnapshotRecords: 12, TotalAlerts: 4}, nil).Once()
	ms.EXPECT().ListJobRuns(mock.Anything, JobMonitoring, 1).
		Return([]domain.JobRun{{JobName: JobMonitoring, StartedAt: testNow.Add(-time.Hour), Status: "succeeded"}}, nil).
		Once()

	stats, err := eng.MonitoringStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.SnapshotRecords)
	require.NotNil(t, stats.LastRunAt)
	assert.Equal(t, testNow.Add(-time.Hour), *stats.LastRunAt)
	assert.Equal(t, "succeeded", stats.LastRunStatus)
}
