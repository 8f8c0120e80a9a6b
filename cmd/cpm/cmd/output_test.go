package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/donaldgifford/competitive-price-monitor/internal/api/client"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestPrintAlertsTable(t *testing.T) {
	out := captureStdout(t)

	err := printAlertsTable([]domain.Alert{{
		ID:            "a1",
		ASIN:          "B0OURS0001",
		AlertType:     domain.AlertCompetitorUndercut,
		Priority:      domain.SeverityHigh,
		OldValue:      decimal.RequireFromString("100"),
		NewValue:      decimal.RequireFromString("80"),
		ChangePercent: decimal.RequireFromString("20"),
		IsRead:        true,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "competitor_undercut")
	assert.Contains(t, out.String(), "100.00")
	assert.Contains(t, out.String(), "20.0%")
	assert.Contains(t, out.String(), "read")
	assert.Contains(t, out.String(), "2026-03-01 12:00:00")
}

func TestAlertState(t *testing.T) {
	tests := []struct {
		name  string
		alert domain.Alert
		want  string
	}{
		{name: "new", alert: domain.Alert{}, want: "unread"},
		{name: "read", alert: domain.Alert{IsRead: true}, want: "read"},
		{name: "dismissed wins", alert: domain.Alert{IsRead: true, IsDismissed: true}, want: "dismissed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alertState(&tt.alert))
		})
	}
}

func TestPrintCleanupTable(t *testing.T) {
	out := captureStdout(t)

	err := printCleanupTable(&apiclient.CleanupResponse{
		Steps: []domain.CleanupStep{
			{Store: "alerts", Deleted: 3},
			{Store: "snapshots", Error: "timeout"},
		},
		TotalDeleted: 3,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "alerts")
	assert.Contains(t, out.String(), "timeout")
	assert.Contains(t, out.String(), "TOTAL")
}

func TestPrintAlertStatistics_SortedBreakdown(t *testing.T) {
	out := captureStdout(t)

	err := printAlertStatistics(&domain.AlertStatistics{
		WindowDays: 7,
		Total:      3,
		ByType:     map[string]int{"rank_comparison": 1, "competitor_undercut": 2},
	})
	require.NoError(t, err)

	s := out.String()
	assert.Less(t, bytes.Index([]byte(s), []byte("competitor_undercut")), bytes.Index([]byte(s), []byte("rank_comparison")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
