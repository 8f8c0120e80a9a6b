package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/competitive-price-monitor/internal/store"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const (
	defaultStatisticsDays    = 30
	defaultRankingIssueLimit = 20
	trendDays                = 7
)

func validateAlertID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: alert id %q", ErrInvalidInput, id)
	}
	return nil
}

// ListAlerts returns one page of non-dismissed alerts matching filter,
// together with the counts for every filter category.
func (eng *Engine) ListAlerts(
	ctx context.Context,
	filter domain.AlertFilter,
	limit, offset int,
) (*domain.AlertPage, error) {
	if filter == "" {
		filter = domain.FilterAll
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, filter)
	}

	q := &store.AlertQuery{Filter: filter, Limit: limit, Offset: offset}
	alerts, err := eng.store.ListAlerts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}
	counts, err := eng.store.CountAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting alerts: %w", err)
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return &domain.AlertPage{
		Alerts: alerts,
		Counts: *counts,
		Filter: filter,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetAlert returns a single alert by id.
func (eng *Engine) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	if err := validateAlertID(id); err != nil {
		return nil, err
	}
	return eng.store.GetAlert(ctx, id)
}

// MarkRead marks one alert read and returns it.
func (eng *Engine) MarkRead(ctx context.Context, id string) (*domain.Alert, error) {
	if err := validateAlertID(id); err != nil {
		return nil, err
	}
	a, err := eng.store.MarkAlertRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("marking alert %s read: %w", id, err)
	}
	return a, nil
}

// MarkAllRead marks every unread, non-dismissed alert read.
func (eng *Engine) MarkAllRead(ctx context.Context) (int, error) {
	n, err := eng.store.MarkAllAlertsRead(ctx)
	if err != nil {
		return 0, fmt.Errorf("marking all alerts read: %w", err)
	}
	return n, nil
}

// Dismiss dismisses one alert and returns it.
func (eng *Engine) Dismiss(ctx context.Context, id string) (*domain.Alert, error) {
	if err := validateAlertID(id); err != nil {
		return nil, err
	}
	a, err := eng.store.DismissAlert(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("dismissing alert %s: %w", id, err)
	}
	return a, nil
}

// DismissMany dismisses the given alerts and returns how many changed.
func (eng *Engine) DismissMany(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no alert ids", ErrInvalidInput)
	}
	for _, id := range ids {
		if err := validateAlertID(id); err != nil {
			return 0, err
		}
	}
	n, err := eng.store.DismissAlerts(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("dismissing alerts: %w", err)
	}
	return n, nil
}

// Statistics aggregates alerts created in the last days days, plus a daily
// trend covering the last seven days including today.
func (eng *Engine) Statistics(ctx context.Context, days int) (*domain.AlertStatistics, error) {
	if days <= 0 {
		days = defaultStatisticsDays
	}
	now := eng.now().UTC()
	since := now.Add(-time.Duration(days) * 24 * time.Hour)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	trendSince := today.AddDate(0, 0, -(trendDays - 1))

	stats, err := eng.store.AlertStatistics(ctx, since, trendSince)
	if err != nil {
		return nil, fmt.Errorf("computing alert statistics: %w", err)
	}
	stats.WindowDays = days
	return stats, nil
}

// RankingIssues returns unread rank alerts, newest first.
func (eng *Engine) RankingIssues(ctx context.Context, limit int) ([]domain.Alert, error) {
	if limit <= 0 {
		limit = defaultRankingIssueLimit
	}
	alerts, err := eng.store.ListRankingIssues(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing ranking issues: %w", err)
	}
	return alerts, nil
}
