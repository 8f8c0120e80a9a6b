package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
	"github.com/donaldgifford/competitive-price-monitor/internal/store"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// Job names recorded in job_runs and used as scheduler lock keys.
const (
	JobMonitoring = "monitoring"
	JobCleanup    = "cleanup"
	JobNotify     = "notify"
)

const (
	staleJobThreshold = 2 * time.Hour

	jobStatusSucceeded = "succeeded"
	jobStatusFailed    = "failed"
)

// ScheduleIntervals sets how often each job runs. A zero Notify interval
// disables notification dispatch.
type ScheduleIntervals struct {
	Monitoring time.Duration
	Cleanup    time.Duration
	Notify     time.Duration
}

// Scheduler runs monitoring, retention and notification jobs on a schedule.
// Each run holds a database lease so that only one replica executes a job at
// a time, and is recorded in job_runs.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger
	holder string
	runCfg domain.RunConfig

	monitoringInterval time.Duration
	cleanupInterval    time.Duration
	notifyInterval     time.Duration

	monitoringEntryID cron.EntryID
	cleanupEntryID    cron.EntryID
	notifyEntryID     cron.EntryID
}

// NewScheduler creates a Scheduler that runs engine tasks on a schedule.
func NewScheduler(
	eng *Engine,
	s store.Store,
	intervals ScheduleIntervals,
	runCfg domain.RunConfig,
	log *slog.Logger,
) (*Scheduler, error) {
	if intervals.Monitoring <= 0 || intervals.Cleanup <= 0 {
		return nil, errors.New("monitoring and cleanup intervals must be positive")
	}

	sched := &Scheduler{
		cron:               cron.New(),
		engine:             eng,
		store:              s,
		log:                log,
		holder:             uuid.NewString(),
		runCfg:             runCfg,
		monitoringInterval: intervals.Monitoring,
		cleanupInterval:    intervals.Cleanup,
		notifyInterval:     intervals.Notify,
	}

	var err error
	sched.monitoringEntryID, err = sched.cron.AddFunc(
		"@every "+intervals.Monitoring.String(),
		sched.runMonitoring,
	)
	if err != nil {
		return nil, fmt.Errorf("scheduling monitoring: %w", err)
	}

	sched.cleanupEntryID, err = sched.cron.AddFunc(
		"@every "+intervals.Cleanup.String(),
		sched.runCleanup,
	)
	if err != nil {
		return nil, fmt.Errorf("scheduling cleanup: %w", err)
	}

	if intervals.Notify > 0 {
		sched.notifyEntryID, err = sched.cron.AddFunc(
			"@every "+intervals.Notify.String(),
			sched.runNotify,
		)
		if err != nil {
			return nil, fmt.Errorf("scheduling notify: %w", err)
		}
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// NextRuns returns when each registered job fires next. It is empty until
// Start has been called.
func (s *Scheduler) NextRuns() map[string]time.Time {
	ids := map[string]cron.EntryID{
		JobMonitoring: s.monitoringEntryID,
		JobCleanup:    s.cleanupEntryID,
		JobNotify:     s.notifyEntryID,
	}
	next := make(map[string]time.Time, len(ids))
	for name, id := range ids {
		if id == 0 {
			continue
		}
		if at := s.cron.Entry(id).Next; !at.IsZero() {
			next[name] = at
		}
	}
	return next
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes each job's next run time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	set := func(id cron.EntryID, g interface{ Set(float64) }) {
		if id == 0 {
			return
		}
		if next := s.cron.Entry(id).Next; !next.IsZero() {
			g.Set(float64(next.Unix()))
		}
	}
	set(s.monitoringEntryID, metrics.SchedulerNextMonitoringTimestamp)
	set(s.cleanupEntryID, metrics.SchedulerNextCleanupTimestamp)
	set(s.notifyEntryID, metrics.SchedulerNextNotifyTimestamp)
}

// RecoverStaleJobRuns marks job runs left running by a crashed process.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobThreshold)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

func (s *Scheduler) runMonitoring() {
	defer s.SyncNextRunTimestamps()
	_ = s.runJob(context.Background(), JobMonitoring, s.monitoringInterval, func(ctx context.Context) (int, error) {
		res, err := s.engine.RunMonitoringCycle(ctx, s.runCfg)
		if err != nil {
			return 0, err
		}
		return res.Processed, nil
	})
}

func (s *Scheduler) runCleanup() {
	defer s.SyncNextRunTimestamps()
	_ = s.runJob(context.Background(), JobCleanup, s.cleanupInterval, func(ctx context.Context) (int, error) {
		res := s.engine.Cleanup(ctx, 0, 0)
		if res.Failed() {
			return int(res.TotalDeleted()), errors.New("one or more retention steps failed")
		}
		return int(res.TotalDeleted()), nil
	})
}

func (s *Scheduler) runNotify() {
	defer s.SyncNextRunTimestamps()
	_ = s.runJob(context.Background(), JobNotify, s.notifyInterval, s.engine.DispatchNotifications)
}

// runJob executes fn under the job's lease lock and records the run. A lock
// held by another replica skips the run without error.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	ttl time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, ttl)
	if err != nil {
		s.log.Error("acquiring scheduler lock", "job", name, "error", err)
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !acquired {
		s.log.Debug("job locked by another instance, skipping", "job", name)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(ctx, name, s.holder); err != nil {
			s.log.Warn("releasing scheduler lock", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Error("recording job start", "job", name, "error", err)
		return fmt.Errorf("recording job run for %s: %w", name, err)
	}

	s.log.Info("scheduled job starting", "job", name, "run_id", runID)
	rows, jobErr := fn(ctx)

	status, errText := jobStatusSucceeded, ""
	if jobErr != nil {
		status, errText = jobStatusFailed, jobErr.Error()
		s.log.Error("scheduled job failed", "job", name, "run_id", runID, "error", jobErr)
	} else {
		s.log.Info("scheduled job complete", "job", name, "run_id", runID, "rows", rows)
	}
	metrics.SchedulerJobRunsTotal.WithLabelValues(name, status).Inc()

	if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		s.log.Error("recording job completion", "job", name, "run_id", runID, "error", err)
	}

	return jobErr
}
