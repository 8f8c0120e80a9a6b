package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const defaultPoolSize = 10

// Pool is the subset of *pgxpool.Pool used by PostgresStore. It lets unit
// tests substitute pgxmock for a live database.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	pool Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, maxConns int32) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// NewPostgresStoreWithPool wraps an existing pool.
func NewPostgresStoreWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListMappingsBySKU returns active competitor mappings for one of our SKUs, most critical first.
func (s *PostgresStore) ListMappingsBySKU(
	ctx context.Context,
	sellerSKU string,
) ([]domain.ProductMapping, error) {
	return s.queryMappings(ctx, queryListMappingsBySKU, sellerSKU)
}

// ListMappingsByASIN returns active competitor mappings for one of our ASINs, most critical first.
func (s *PostgresStore) ListMappingsByASIN(
	ctx context.Context,
	ourASIN string,
) ([]domain.ProductMapping, error) {
	return s.queryMappings(ctx, queryListMappingsByASIN, ourASIN)
}

// UpsertMapping inserts a mapping or updates the existing (sku, competitor) pair.
func (s *PostgresStore) UpsertMapping(ctx context.Context, m *domain.ProductMapping) error {
	args := pgx.NamedArgs{
		"our_seller_sku":  m.OurSellerSKU,
		"our_asin":        m.OurASIN,
		"competitor_asin": m.CompetitorASIN,
		"priority":        m.Priority,
		"is_active":       m.IsActive,
		"reason":          m.Reason,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertMapping, args).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("upserting mapping: %w", err)
	}
	return nil
}

// TouchMappings stamps last_checked_at on every active mapping of a SKU.
func (s *PostgresStore) TouchMappings(ctx context.Context, sellerSKU string, t time.Time) error {
	if _, err := s.pool.Exec(ctx, queryTouchMappings, sellerSKU, t); err != nil {
		return fmt.Errorf("touching mappings: %w", err)
	}
	return nil
}

// InsertPriceObservation stores one observed price.
func (s *PostgresStore) InsertPriceObservation(ctx context.Context, o *domain.PriceObservation) error {
	if o.CapturedAt.IsZero() {
		o.CapturedAt = time.Now()
	}

	args := pgx.NamedArgs{
		"asin":                 o.ASIN,
		"seller_sku":           o.SellerSKU,
		"amount":               o.Amount,
		"currency":             o.Currency,
		"condition":            o.Condition,
		"fulfillment_channel":  o.FulfillmentChannel,
		"belongs_to_requester": o.BelongsToRequester,
		"side":                 string(o.Side),
		"captured_at":          o.CapturedAt,
	}

	if err := s.pool.QueryRow(ctx, queryInsertPriceObservation, args).Scan(&o.ID); err != nil {
		return fmt.Errorf("inserting price observation: %w", err)
	}
	return nil
}

// InsertRankObservation stores one observed sales rank.
func (s *PostgresStore) InsertRankObservation(ctx context.Context, o *domain.RankObservation) error {
	if o.CapturedAt.IsZero() {
		o.CapturedAt = time.Now()
	}

	args := pgx.NamedArgs{
		"asin":        o.ASIN,
		"seller_sku":  o.SellerSKU,
		"rank":        o.Rank,
		"category":    o.Category,
		"side":        string(o.Side),
		"captured_at": o.CapturedAt,
	}

	if err := s.pool.QueryRow(ctx, queryInsertRankObservation, args).Scan(&o.ID); err != nil {
		return fmt.Errorf("inserting rank observation: %w", err)
	}
	return nil
}

// LatestOwnPrices returns the most recent positive own price per ASIN.
func (s *PostgresStore) LatestOwnPrices(
	ctx context.Context,
	sel domain.ProductSelection,
) ([]domain.PriceObservation, error) {
	clause, args := selectionSQL(sel, "asin", "seller_sku", 1)
	return s.queryPriceObservations(ctx, queryLatestOwnPricesBase+clause+queryLatestOwnPricesOrder, args...)
}

// ListCompetitorPrices returns positive competitor prices for the given ASINs.
func (s *PostgresStore) ListCompetitorPrices(
	ctx context.Context,
	asins []string,
) ([]domain.PriceObservation, error) {
	if len(asins) == 0 {
		return nil, nil
	}
	return s.queryPriceObservations(ctx, queryListCompetitorPrices, asins)
}

// ListOwnRanks returns every positive own rank observation for the selected products.
func (s *PostgresStore) ListOwnRanks(
	ctx context.Context,
	sel domain.ProductSelection,
) ([]domain.RankObservation, error) {
	clause, args := selectionSQL(sel, "asin", "seller_sku", 1)
	return s.queryRankObservations(ctx, queryListOwnRanksBase+clause+queryListOwnRanksOrder, args...)
}

// ListCompetitorRanks returns positive competitor rank observations for the given ASINs.
func (s *PostgresStore) ListCompetitorRanks(
	ctx context.Context,
	asins []string,
) ([]domain.RankObservation, error) {
	if len(asins) == 0 {
		return nil, nil
	}
	return s.queryRankObservations(ctx, queryListCompetitorRanks, asins)
}

// DeleteObservationsBefore removes price and rank observations for one side
// captured strictly before cutoff.
func (s *PostgresStore) DeleteObservationsBefore(
	ctx context.Context,
	side domain.Side,
	cutoff time.Time,
) (int64, error) {
	prices, err := s.pool.Exec(ctx, queryDeletePriceObservationsBefore, string(side), cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting %s price observations: %w", side, err)
	}

	ranks, err := s.pool.Exec(ctx, queryDeleteRankObservationsBefore, string(side), cutoff)
	if err != nil {
		return prices.RowsAffected(), fmt.Errorf("deleting %s rank observations: %w", side, err)
	}

	return prices.RowsAffected() + ranks.RowsAffected(), nil
}

// GetCatalogProduct looks up a product in the primary catalog.
func (s *PostgresStore) GetCatalogProduct(ctx context.Context, asin string) (*domain.CatalogProduct, error) {
	p := &domain.CatalogProduct{}
	err := s.pool.QueryRow(ctx, queryGetCatalogProduct, asin).Scan(&p.ASIN, &p.ItemName, &p.SellerSKU)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting catalog product: %w", err)
	}
	return p, nil
}

// FindOrderMapping looks up an order mapping matching either the ASIN or the SKU.
func (s *PostgresStore) FindOrderMapping(
	ctx context.Context,
	asin, sellerSKU string,
) (*domain.OrderMapping, error) {
	m := &domain.OrderMapping{}
	err := s.pool.QueryRow(ctx, queryFindOrderMapping, asin, sellerSKU).Scan(
		&m.ASIN, &m.SellerSKU, &m.UnifiedName, &m.SourceName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding order mapping: %w", err)
	}
	return m, nil
}

// RecordSnapshot replaces the snapshot for s.ASIN and appends the value to
// the snapshot history, all in one transaction.
func (s *PostgresStore) RecordSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	if snap.RecordedAt.IsZero() {
		snap.RecordedAt = time.Now()
	}

	args := pgx.NamedArgs{
		"asin":                snap.ASIN,
		"value":               snap.Value,
		"currency":            snap.Currency,
		"seller_sku":          snap.SellerSKU,
		"value_type":          snap.ValueType,
		"condition":           snap.Condition,
		"fulfillment_channel": snap.FulfillmentChannel,
		"data_source":         snap.DataSource,
		"recorded_at":         snap.RecordedAt,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, queryDeleteSnapshot, snap.ASIN); err != nil {
		return fmt.Errorf("deleting previous snapshot: %w", err)
	}

	if err := tx.QueryRow(ctx, queryInsertSnapshot, args).Scan(&snap.ID); err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	if _, err := tx.Exec(ctx, queryAppendSnapshotHistory, args); err != nil {
		return fmt.Errorf("appending snapshot history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the current snapshot for an ASIN.
func (s *PostgresStore) GetSnapshot(ctx context.Context, asin string) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}
	err := scanSnapshot(s.pool.QueryRow(ctx, queryGetSnapshot, asin), snap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshotHistory returns recorded values for an ASIN since the given
// time, newest first.
func (s *PostgresStore) ListSnapshotHistory(
	ctx context.Context,
	asin string,
	kind HistoryKind,
	since time.Time,
	limit int,
) ([]domain.Snapshot, error) {
	query := queryListPriceHistory
	if kind == HistoryRank {
		query = queryListRankHistory
	}

	rows, err := s.pool.Query(ctx, query, asin, since, limit)
	if err != nil {
		return nil, fmt.Errorf("querying %s history: %w", kind, err)
	}
	defer rows.Close()

	var history []domain.Snapshot
	for rows.Next() {
		var snap domain.Snapshot
		if err := scanSnapshot(rows, &snap); err != nil {
			return nil, fmt.Errorf("scanning %s history: %w", kind, err)
		}
		history = append(history, snap)
	}

	return history, rows.Err()
}

// ListUnsnapshottedOwnASINs returns own ASINs with a positive price and no snapshot yet.
func (s *PostgresStore) ListUnsnapshottedOwnASINs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListUnsnapshottedOwnASINs)
	if err != nil {
		return nil, fmt.Errorf("querying unsnapshotted asins: %w", err)
	}
	defer rows.Close()

	var asins []string
	for rows.Next() {
		var asin string
		if err := rows.Scan(&asin); err != nil {
			return nil, fmt.Errorf("scanning asin: %w", err)
		}
		asins = append(asins, asin)
	}

	return asins, rows.Err()
}

// DeleteSnapshotsBefore removes snapshots recorded strictly before cutoff.
func (s *PostgresStore) DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.deleteBefore(ctx, queryDeleteSnapshotsBefore, cutoff, "snapshots")
}

// DeleteSnapshotHistoryBefore removes history rows recorded strictly before cutoff.
func (s *PostgresStore) DeleteSnapshotHistoryBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.deleteBefore(ctx, queryDeleteSnapshotHistoryBefore, cutoff, "snapshot history")
}

// CreateAlert inserts an alert unconditionally.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	if err := s.pool.QueryRow(ctx, queryCreateAlert, alertArgs(a)).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("creating alert: %w", err)
	}
	return nil
}

// CreateAlertIfAbsent inserts an alert unless a live alert of the same type
// exists for the same ASIN created after since. bucket keys the dedup unique
// index and must be the start of the window slot the alert falls in. It
// reports whether a row was written.
func (s *PostgresStore) CreateAlertIfAbsent(
	ctx context.Context,
	a *domain.Alert,
	since, bucket time.Time,
) (bool, error) {
	args := alertArgs(a)
	args["cutoff"] = since
	args["dedup_bucket"] = bucket

	err := s.pool.QueryRow(ctx, queryCreateAlertIfAbsent, args).Scan(&a.ID, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // suppressed by the window or the unique index
	}
	if err != nil {
		return false, fmt.Errorf("creating alert: %w", err)
	}
	return true, nil
}

// HasRecentAlert reports whether a live alert of the given type exists for
// the ASIN created after since.
func (s *PostgresStore) HasRecentAlert(
	ctx context.Context,
	asin string,
	alertType domain.AlertType,
	since time.Time,
) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryHasRecentAlert, asin, string(alertType), since).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking recent alert: %w", err)
	}
	return exists, nil
}

// GetAlert returns a single alert.
func (s *PostgresStore) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	return s.queryOneAlert(ctx, queryGetAlert, id)
}

// ListAlerts returns live alerts matching q.
func (s *PostgresStore) ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.Alert, error) {
	dataSQL, args := q.ToSQL()
	return s.queryAlerts(ctx, dataSQL, args...)
}

// CountAlerts returns live alert totals for every listing filter.
func (s *PostgresStore) CountAlerts(ctx context.Context) (*domain.AlertCounts, error) {
	c := &domain.AlertCounts{}
	if err := s.pool.QueryRow(ctx, queryCountAlerts).Scan(
		&c.Total, &c.Unread, &c.HighPriority, &c.RankAlerts, &c.PriceAlerts,
	); err != nil {
		return nil, fmt.Errorf("counting alerts: %w", err)
	}
	return c, nil
}

// MarkAlertRead flags an alert as read and returns it.
func (s *PostgresStore) MarkAlertRead(ctx context.Context, id string) (*domain.Alert, error) {
	return s.queryOneAlert(ctx, queryMarkAlertRead, id)
}

// MarkAllAlertsRead flags every unread live alert as read.
func (s *PostgresStore) MarkAllAlertsRead(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, queryMarkAllAlertsRead)
	if err != nil {
		return 0, fmt.Errorf("marking all alerts read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DismissAlert flags an alert as dismissed and returns it.
func (s *PostgresStore) DismissAlert(ctx context.Context, id string) (*domain.Alert, error) {
	return s.queryOneAlert(ctx, queryDismissAlert, id)
}

// DismissAlerts dismisses every live alert in ids.
func (s *PostgresStore) DismissAlerts(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := s.pool.Exec(ctx, queryDismissAlerts, ids)
	if err != nil {
		return 0, fmt.Errorf("dismissing alerts: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// AlertStatistics aggregates live alerts created since the given time, plus
// a day-bucketed trend since trendSince.
func (s *PostgresStore) AlertStatistics(
	ctx context.Context,
	since, trendSince time.Time,
) (*domain.AlertStatistics, error) {
	st := &domain.AlertStatistics{
		ByType:     make(map[string]int),
		ByPriority: make(map[string]int),
	}

	if err := s.pool.QueryRow(ctx, queryAlertTotals, since).Scan(
		&st.Total, &st.Unread, &st.Critical, &st.RankAlerts, &st.PriceAlerts,
	); err != nil {
		return nil, fmt.Errorf("querying alert totals: %w", err)
	}

	if err := s.queryCounts(ctx, queryAlertsByType, since, st.ByType); err != nil {
		return nil, fmt.Errorf("querying alerts by type: %w", err)
	}

	if err := s.queryCounts(ctx, queryAlertsByPriority, since, st.ByPriority); err != nil {
		return nil, fmt.Errorf("querying alerts by priority: %w", err)
	}

	rows, err := s.pool.Query(ctx, queryAlertTrend, trendSince)
	if err != nil {
		return nil, fmt.Errorf("querying alert trend: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.TrendPoint
		if err := rows.Scan(&p.Date, &p.Count, &p.RankCount, &p.PriceCount); err != nil {
			return nil, fmt.Errorf("scanning alert trend: %w", err)
		}
		st.RecentTrend = append(st.RecentTrend, p)
	}

	return st, rows.Err()
}

// ListRankingIssues returns unread live rank alerts, newest first.
func (s *PostgresStore) ListRankingIssues(ctx context.Context, limit int) ([]domain.Alert, error) {
	return s.queryAlerts(ctx, queryListRankingIssues, limit)
}

// ListPendingAlerts returns live alerts not yet notified at or above minSeverity.
func (s *PostgresStore) ListPendingAlerts(
	ctx context.Context,
	minSeverity domain.Severity,
) ([]domain.Alert, error) {
	rank := minSeverity.Rank()
	if rank == 0 {
		rank = domain.SeverityLow.Rank()
	}
	return s.queryAlerts(ctx, queryListPendingAlerts, rank)
}

// MarkAlertsNotified flags the given alerts as delivered.
func (s *PostgresStore) MarkAlertsNotified(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.pool.Exec(ctx, queryMarkAlertsNotified, ids); err != nil {
		return fmt.Errorf("marking alerts notified: %w", err)
	}
	return nil
}

// DeleteDismissedAlertsBefore removes dismissed alerts created strictly before cutoff.
func (s *PostgresStore) DeleteDismissedAlertsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.deleteBefore(ctx, queryDeleteDismissedAlertsBefore, cutoff, "dismissed alerts")
}

// InsertComparison appends a comparison to the competitor comparison history.
func (s *PostgresStore) InsertComparison(ctx context.Context, c *domain.ComparisonRecord) error {
	if err := s.pool.QueryRow(ctx, queryInsertComparison,
		c.OurASIN, c.CompetitorASIN, c.Kind, c.OurValue, c.CompetitorValue,
		c.Difference, c.PercentageDifference,
	).Scan(&c.ID, &c.RecordedAt); err != nil {
		return fmt.Errorf("inserting comparison: %w", err)
	}
	return nil
}

// DeleteComparisonsBefore removes comparison history rows recorded strictly before cutoff.
func (s *PostgresStore) DeleteComparisonsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.deleteBefore(ctx, queryDeleteComparisonsBefore, cutoff, "comparisons")
}

// GetMonitoringStats returns headline counts for the snapshot and alert stores.
func (s *PostgresStore) GetMonitoringStats(
	ctx context.Context,
	recentSince time.Time,
) (*domain.MonitoringStats, error) {
	st := &domain.MonitoringStats{}
	if err := s.pool.QueryRow(ctx, queryMonitoringStats, recentSince).Scan(
		&st.SnapshotRecords, &st.TotalAlerts, &st.RecentAlerts,
		&st.PriceAlerts, &st.RankAlerts, &st.MonitoredProducts,
	); err != nil {
		return nil, fmt.Errorf("querying monitoring stats: %w", err)
	}
	return st, nil
}

// GetCompetitiveOverview returns headline counts for mappings, observations and alerts.
func (s *PostgresStore) GetCompetitiveOverview(ctx context.Context) (*domain.CompetitiveOverview, error) {
	o := &domain.CompetitiveOverview{}
	if err := s.pool.QueryRow(ctx, queryCompetitiveOverview).Scan(
		&o.MappedProducts, &o.ActiveMappings, &o.PricePoints, &o.RankPoints,
		&o.ActiveAlerts, &o.ProductsWithAlerts,
		&o.RankAlerts, &o.CriticalRankAlerts, &o.PriceAlerts, &o.CriticalPriceAlerts,
	); err != nil {
		return nil, fmt.Errorf("querying competitive overview: %w", err)
	}
	return o, nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks 'running' job rows started more than olderThan
// ago as 'crashed' and returns how many it marked. Pruning old runs is left
// to DeleteJobRunsBefore in the retention sweep.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteJobRunsBefore prunes finished job runs started before cutoff.
func (s *PostgresStore) DeleteJobRunsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.deleteBefore(ctx, queryDeleteJobRunsBefore, cutoff, "job runs")
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *PostgresStore) deleteBefore(
	ctx context.Context,
	query string,
	cutoff time.Time,
	what string,
) (int64, error) {
	tag, err := s.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting %s: %w", what, err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) queryMappings(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.ProductMapping, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying mappings: %w", err)
	}
	defer rows.Close()

	var mappings []domain.ProductMapping
	for rows.Next() {
		var m domain.ProductMapping
		if err := rows.Scan(
			&m.ID, &m.OurSellerSKU, &m.OurASIN, &m.CompetitorASIN, &m.Priority,
			&m.IsActive, &m.Reason, &m.LastCheckedAt, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}
		mappings = append(mappings, m)
	}

	return mappings, rows.Err()
}

func (s *PostgresStore) queryPriceObservations(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.PriceObservation, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying price observations: %w", err)
	}
	defer rows.Close()

	var obs []domain.PriceObservation
	for rows.Next() {
		var o domain.PriceObservation
		if err := rows.Scan(
			&o.ID, &o.ASIN, &o.SellerSKU, &o.Amount, &o.Currency, &o.Condition,
			&o.FulfillmentChannel, &o.BelongsToRequester, &o.Side, &o.CapturedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning price observation: %w", err)
		}
		obs = append(obs, o)
	}

	return obs, rows.Err()
}

func (s *PostgresStore) queryRankObservations(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.RankObservation, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rank observations: %w", err)
	}
	defer rows.Close()

	var obs []domain.RankObservation
	for rows.Next() {
		var o domain.RankObservation
		if err := rows.Scan(
			&o.ID, &o.ASIN, &o.SellerSKU, &o.Rank, &o.Category, &o.Side, &o.CapturedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning rank observation: %w", err)
		}
		obs = append(obs, o)
	}

	return obs, rows.Err()
}

func (s *PostgresStore) queryCounts(
	ctx context.Context,
	query string,
	since time.Time,
	into map[string]int,
) error {
	rows, err := s.pool.Query(ctx, query, since)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}

	return rows.Err()
}

// queryOneAlert runs a single-row alert query, mapping no rows to ErrNotFound.
func (s *PostgresStore) queryOneAlert(ctx context.Context, query string, args ...any) (*domain.Alert, error) {
	a := &domain.Alert{}
	err := scanAlert(s.pool.QueryRow(ctx, query, args...), a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying alert: %w", err)
	}
	return a, nil
}

// queryAlerts is a helper for multi-row alert queries.
func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Alert, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

func alertArgs(a *domain.Alert) pgx.NamedArgs {
	return pgx.NamedArgs{
		"asin":                a.ASIN,
		"seller_sku":          a.SellerSKU,
		"product_name":        a.ProductName,
		"old_value":           a.OldValue,
		"new_value":           a.NewValue,
		"value_change":        a.ValueChange,
		"change_percent":      a.ChangePercent,
		"currency":            a.Currency,
		"alert_type":          string(a.AlertType),
		"competitor_name":     a.CompetitorName,
		"message":             a.Message,
		"priority":            string(a.Priority),
		"threshold_triggered": a.ThresholdTriggered,
	}
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanAlert(row scannable, a *domain.Alert) error {
	return row.Scan(
		&a.ID, &a.ASIN, &a.SellerSKU, &a.ProductName,
		&a.OldValue, &a.NewValue, &a.ValueChange, &a.ChangePercent, &a.Currency,
		&a.AlertType, &a.CompetitorName, &a.Message, &a.Priority, &a.ThresholdTriggered,
		&a.Notified, &a.NotifiedAt, &a.IsRead, &a.ReadAt, &a.IsDismissed, &a.DismissedAt, &a.CreatedAt,
	)
}

func scanSnapshot(row scannable, snap *domain.Snapshot) error {
	return row.Scan(
		&snap.ID, &snap.ASIN, &snap.Value, &snap.Currency, &snap.SellerSKU, &snap.ValueType,
		&snap.Condition, &snap.FulfillmentChannel, &snap.DataSource, &snap.RecordedAt, &snap.Notified,
	)
}
