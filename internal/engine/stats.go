package engine

import (
	"context"
	"fmt"
	"time"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// MonitoringStats summarizes snapshot and alert volume plus the last
// monitoring job run.
func (eng *Engine) MonitoringStats(ctx context.Context) (*domain.MonitoringStats, error) {
	stats, err := eng.store.GetMonitoringStats(ctx, eng.now().UTC().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("getting monitoring stats: %w", err)
	}

	runs, err := eng.store.ListJobRuns(ctx, JobMonitoring, 1)
	if err != nil {
		eng.log.Warn("loading last monitoring run", "error", err)
		return stats, nil
	}
	if len(runs) > 0 {
		started := runs[0].StartedAt
		stats.LastRunAt = &started
		stats.LastRunStatus = runs[0].Status
	}
	return stats, nil
}

// CompetitiveOverview summarizes mapping coverage and open alerts.
func (eng *Engine) CompetitiveOverview(ctx context.Context) (*domain.CompetitiveOverview, error) {
	o, err := eng.store.GetCompetitiveOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting competitive overview: %w", err)
	}
	return o, nil
}
