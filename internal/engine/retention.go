package engine

import (
	"context"
	"time"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// RetentionPolicy holds the age limits, in days, applied by Cleanup.
type RetentionPolicy struct {
	AlertDays       int
	HistoryDays     int
	ObservationDays int
}

// DefaultRetentionPolicy keeps dismissed alerts 90 days, snapshots a year
// and raw observations 30 days.
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{AlertDays: 90, HistoryDays: 365, ObservationDays: 30}
}

func (p RetentionPolicy) withDefaults() RetentionPolicy {
	d := DefaultRetentionPolicy()
	if p.AlertDays <= 0 {
		p.AlertDays = d.AlertDays
	}
	if p.HistoryDays <= 0 {
		p.HistoryDays = d.HistoryDays
	}
	if p.ObservationDays <= 0 {
		p.ObservationDays = d.ObservationDays
	}
	return p
}

type retentionStep struct {
	name   string
	cutoff time.Time
	del    func(context.Context, time.Time) (int64, error)
}

// Cleanup deletes rows older than their store's age limit. alertDays and
// historyDays override the policy when positive. Each store is swept
// independently; a failure in one is reported in its step and does not stop
// or roll back the others.
func (eng *Engine) Cleanup(ctx context.Context, alertDays, historyDays int) *domain.CleanupResult {
	p := eng.retention
	if alertDays > 0 {
		p.AlertDays = alertDays
	}
	if historyDays > 0 {
		p.HistoryDays = historyDays
	}

	now := eng.now().UTC()
	cutoff := func(days int) time.Time {
		return now.Add(-time.Duration(days) * 24 * time.Hour)
	}
	obsCutoff := cutoff(p.ObservationDays)
	histCutoff := cutoff(p.HistoryDays)

	steps := []retentionStep{
		{"own_observations", obsCutoff, func(ctx context.Context, t time.Time) (int64, error) {
			return eng.store.DeleteObservationsBefore(ctx, domain.SideOwn, t)
		}},
		{"competitor_observations", obsCutoff, func(ctx context.Context, t time.Time) (int64, error) {
			return eng.store.DeleteObservationsBefore(ctx, domain.SideCompetitor, t)
		}},
		{"alerts", cutoff(p.AlertDays), eng.store.DeleteDismissedAlertsBefore},
		{"snapshots", histCutoff, eng.store.DeleteSnapshotsBefore},
		{"snapshot_history", histCutoff, eng.store.DeleteSnapshotHistoryBefore},
		{"comparisons", obsCutoff, eng.store.DeleteComparisonsBefore},
		{"job_runs", obsCutoff, eng.store.DeleteJobRunsBefore},
	}

	res := &domain.CleanupResult{Steps: make([]domain.CleanupStep, 0, len(steps))}
	for _, s := range steps {
		n, err := s.del(ctx, s.cutoff)
		step := domain.CleanupStep{Store: s.name, Deleted: n}
		if err != nil {
			step.Error = err.Error()
			metrics.RetentionFailuresTotal.WithLabelValues(s.name).Inc()
			eng.log.Error("retention sweep failed", "store", s.name, "error", err)
		} else {
			metrics.RetentionDeletedTotal.WithLabelValues(s.name).Add(float64(n))
		}
		res.Steps = append(res.Steps, step)
	}

	eng.log.Info("retention sweep complete",
		"deleted", res.TotalDeleted(),
		"failed", res.Failed(),
	)
	return res
}
