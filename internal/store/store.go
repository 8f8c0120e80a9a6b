// Package store defines the datastore abstraction for the competitive price monitor.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// HistoryKind selects price or rank rows from the snapshot history.
type HistoryKind string

// History kinds.
const (
	HistoryPrice HistoryKind = "price"
	HistoryRank  HistoryKind = "rank"
)

// Store defines all data access operations for the competitive price monitor.
type Store interface {
	// Mappings
	ListMappingsBySKU(ctx context.Context, sellerSKU string) ([]domain.ProductMapping, error)
	ListMappingsByASIN(ctx context.Context, ourASIN string) ([]domain.ProductMapping, error)
	UpsertMapping(ctx context.Context, m *domain.ProductMapping) error
	TouchMappings(ctx context.Context, sellerSKU string, t time.Time) error

	// Observations
	InsertPriceObservation(ctx context.Context, o *domain.PriceObservation) error
	InsertRankObservation(ctx context.Context, o *domain.RankObservation) error
	LatestOwnPrices(ctx context.Context, sel domain.ProductSelection) ([]domain.PriceObservation, error)
	ListCompetitorPrices(ctx context.Context, asins []string) ([]domain.PriceObservation, error)
	ListOwnRanks(ctx context.Context, sel domain.ProductSelection) ([]domain.RankObservation, error)
	ListCompetitorRanks(ctx context.Context, asins []string) ([]domain.RankObservation, error)
	DeleteObservationsBefore(ctx context.Context, side domain.Side, cutoff time.Time) (int64, error)

	// Catalog
	GetCatalogProduct(ctx context.Context, asin string) (*domain.CatalogProduct, error)
	FindOrderMapping(ctx context.Context, asin, sellerSKU string) (*domain.OrderMapping, error)

	// Snapshots
	RecordSnapshot(ctx context.Context, s *domain.Snapshot) error
	GetSnapshot(ctx context.Context, asin string) (*domain.Snapshot, error)
	ListSnapshotHistory(
		ctx context.Context,
		asin string,
		kind HistoryKind,
		since time.Time,
		limit int,
	) ([]domain.Snapshot, error)
	ListUnsnapshottedOwnASINs(ctx context.Context) ([]string, error)
	DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteSnapshotHistoryBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Alerts
	CreateAlert(ctx context.Context, a *domain.Alert) error
	CreateAlertIfAbsent(ctx context.Context, a *domain.Alert, since, bucket time.Time) (bool, error)
	HasRecentAlert(ctx context.Context, asin string, alertType domain.AlertType, since time.Time) (bool, error)
	GetAlert(ctx context.Context, id string) (*domain.Alert, error)
	ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.Alert, error)
	CountAlerts(ctx context.Context) (*domain.AlertCounts, error)
	MarkAlertRead(ctx context.Context, id string) (*domain.Alert, error)
	MarkAllAlertsRead(ctx context.Context) (int, error)
	DismissAlert(ctx context.Context, id string) (*domain.Alert, error)
	DismissAlerts(ctx context.Context, ids []string) (int, error)
	AlertStatistics(ctx context.Context, since, trendSince time.Time) (*domain.AlertStatistics, error)
	ListRankingIssues(ctx context.Context, limit int) ([]domain.Alert, error)
	ListPendingAlerts(ctx context.Context, minSeverity domain.Severity) ([]domain.Alert, error)
	MarkAlertsNotified(ctx context.Context, ids []string) error
	DeleteDismissedAlertsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Comparisons
	InsertComparison(ctx context.Context, c *domain.ComparisonRecord) error
	DeleteComparisonsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Statistics
	GetMonitoringStats(ctx context.Context, recentSince time.Time) (*domain.MonitoringStats, error)
	GetCompetitiveOverview(ctx context.Context) (*domain.CompetitiveOverview, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	DeleteJobRunsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
