package store

// Mapping queries.
const (
	mappingColumns = `id, our_seller_sku, our_asin, competitor_asin, priority,
		is_active, reason, last_checked_at, created_at`

	queryListMappingsBySKU = `
		SELECT ` + mappingColumns + `
		FROM product_mappings
		WHERE our_seller_sku = $1 AND is_active
		ORDER BY priority ASC, created_at ASC`

	queryListMappingsByASIN = `
		SELECT ` + mappingColumns + `
		FROM product_mappings
		WHERE our_asin = $1 AND is_active
		ORDER BY priority ASC, created_at ASC`

	queryUpsertMapping = `
		INSERT INTO product_mappings (
			our_seller_sku, our_asin, competitor_asin, priority, is_active, reason
		) VALUES (
			@our_seller_sku, @our_asin, @competitor_asin, @priority, @is_active, @reason
		)
		ON CONFLICT (our_seller_sku, competitor_asin) DO UPDATE SET
			our_asin  = EXCLUDED.our_asin,
			priority  = EXCLUDED.priority,
			is_active = EXCLUDED.is_active,
			reason    = EXCLUDED.reason
		RETURNING id, created_at`

	queryTouchMappings = `
		UPDATE product_mappings SET last_checked_at = $2
		WHERE our_seller_sku = $1 AND is_active`
)

// Observation queries.
const (
	queryInsertPriceObservation = `
		INSERT INTO price_observations (
			asin, seller_sku, amount, currency, condition,
			fulfillment_channel, belongs_to_requester, side, captured_at
		) VALUES (
			@asin, @seller_sku, @amount, @currency, @condition,
			@fulfillment_channel, @belongs_to_requester, @side, @captured_at
		)
		RETURNING id`

	queryInsertRankObservation = `
		INSERT INTO rank_observations (
			asin, seller_sku, rank, category, side, captured_at
		) VALUES (
			@asin, @seller_sku, @rank, @category, @side, @captured_at
		)
		RETURNING id`

	priceObservationColumns = `id, asin, seller_sku, amount, currency, condition,
		fulfillment_channel, belongs_to_requester, side, captured_at`

	rankObservationColumns = `id, asin, seller_sku, rank, category, side, captured_at`

	// queryLatestOwnPricesBase is completed with an optional selection predicate.
	queryLatestOwnPricesBase = `
		SELECT DISTINCT ON (asin) ` + priceObservationColumns + `
		FROM price_observations
		WHERE side = 'own' AND amount > 0`

	queryLatestOwnPricesOrder = `
		ORDER BY asin, captured_at DESC`

	queryListCompetitorPrices = `
		SELECT ` + priceObservationColumns + `
		FROM price_observations
		WHERE side = 'competitor' AND amount > 0 AND asin = ANY($1)
		ORDER BY captured_at DESC`

	queryListOwnRanksBase = `
		SELECT ` + rankObservationColumns + `
		FROM rank_observations
		WHERE side = 'own' AND rank > 0`

	queryListOwnRanksOrder = `
		ORDER BY asin, captured_at DESC`

	queryListCompetitorRanks = `
		SELECT ` + rankObservationColumns + `
		FROM rank_observations
		WHERE side = 'competitor' AND rank > 0 AND asin = ANY($1)
		ORDER BY captured_at DESC`

	queryDeletePriceObservationsBefore = `
		DELETE FROM price_observations WHERE side = $1 AND captured_at < $2`

	queryDeleteRankObservationsBefore = `
		DELETE FROM rank_observations WHERE side = $1 AND captured_at < $2`
)

// Catalog queries.
const (
	queryGetCatalogProduct = `
		SELECT asin, item_name, seller_sku
		FROM catalog_products
		WHERE asin = $1`

	queryFindOrderMapping = `
		SELECT amzn_asin, amzn_sku, unified_product_name, amzn_product_name
		FROM order_mappings
		WHERE (amzn_asin = $1 AND $1 <> '') OR (amzn_sku = $2 AND $2 <> '')
		ORDER BY (unified_product_name <> '') DESC
		LIMIT 1`
)

// Snapshot queries.
const (
	snapshotColumns = `id, asin, value, currency, seller_sku, value_type,
		condition, fulfillment_channel, data_source, recorded_at, notified`

	queryDeleteSnapshot = `DELETE FROM historical_snapshots WHERE asin = $1`

	queryInsertSnapshot = `
		INSERT INTO historical_snapshots (
			asin, value, currency, seller_sku, value_type,
			condition, fulfillment_channel, data_source, recorded_at
		) VALUES (
			@asin, @value, @currency, @seller_sku, @value_type,
			@condition, @fulfillment_channel, @data_source, @recorded_at
		)
		RETURNING id`

	queryAppendSnapshotHistory = `
		INSERT INTO snapshot_history (
			asin, value, currency, seller_sku, value_type,
			condition, fulfillment_channel, data_source, recorded_at
		) VALUES (
			@asin, @value, @currency, @seller_sku, @value_type,
			@condition, @fulfillment_channel, @data_source, @recorded_at
		)`

	queryGetSnapshot = `
		SELECT ` + snapshotColumns + `
		FROM historical_snapshots
		WHERE asin = $1`

	queryListPriceHistory = `
		SELECT id, asin, value, currency, seller_sku, value_type,
			condition, fulfillment_channel, data_source, recorded_at, false
		FROM snapshot_history
		WHERE asin = $1 AND currency <> 'RANK' AND recorded_at >= $2
		ORDER BY recorded_at DESC
		LIMIT $3`

	queryListRankHistory = `
		SELECT id, asin, value, currency, seller_sku, value_type,
			condition, fulfillment_channel, data_source, recorded_at, false
		FROM snapshot_history
		WHERE asin = $1 AND currency = 'RANK' AND recorded_at >= $2
		ORDER BY recorded_at DESC
		LIMIT $3`

	queryListUnsnapshottedOwnASINs = `
		SELECT DISTINCT p.asin
		FROM price_observations p
		WHERE p.side = 'own' AND p.amount > 0
			AND NOT EXISTS (SELECT 1 FROM historical_snapshots h WHERE h.asin = p.asin)
		ORDER BY p.asin`

	queryDeleteSnapshotsBefore = `
		DELETE FROM historical_snapshots WHERE recorded_at < $1`

	queryDeleteSnapshotHistoryBefore = `
		DELETE FROM snapshot_history WHERE recorded_at < $1`
)

// Alert queries.
const (
	alertColumns = `id, asin, seller_sku, product_name,
		old_value, new_value, value_change, change_percent, currency,
		alert_type, competitor_name, message, priority, threshold_triggered,
		notified, notified_at, is_read, read_at, is_dismissed, dismissed_at, created_at`

	queryCreateAlert = `
		INSERT INTO alerts (
			asin, seller_sku, product_name, old_value, new_value, value_change,
			change_percent, currency, alert_type, competitor_name, message,
			priority, threshold_triggered
		) VALUES (
			@asin, @seller_sku, @product_name, @old_value, @new_value, @value_change,
			@change_percent, @currency, @alert_type, @competitor_name, @message,
			@priority, @threshold_triggered
		)
		RETURNING id, created_at`

	// queryCreateAlertIfAbsent inserts only when no live alert of the same
	// type exists for the product inside the window. The partial unique
	// index on (asin, alert_type, dedup_bucket) backs the check for
	// concurrent writers; dedup_bucket is the window-aligned slot start, so
	// the index never rejects an alert the window would allow.
	queryCreateAlertIfAbsent = `
		INSERT INTO alerts (
			asin, seller_sku, product_name, old_value, new_value, value_change,
			change_percent, currency, alert_type, competitor_name, message,
			priority, threshold_triggered, dedup_bucket
		)
		SELECT
			@asin::text, @seller_sku::text, @product_name::text,
			@old_value::numeric, @new_value::numeric, @value_change::numeric,
			@change_percent::numeric, @currency::text, @alert_type::text,
			@competitor_name::text, @message::text, @priority::text,
			@threshold_triggered::numeric, @dedup_bucket::timestamptz
		WHERE NOT EXISTS (
			SELECT 1 FROM alerts
			WHERE asin = @asin
				AND alert_type = @alert_type
				AND NOT is_dismissed
				AND created_at > @cutoff
		)
		ON CONFLICT (asin, alert_type, dedup_bucket) WHERE NOT is_dismissed DO NOTHING
		RETURNING id, created_at`

	queryHasRecentAlert = `
		SELECT EXISTS(
			SELECT 1 FROM alerts
			WHERE asin = $1
				AND alert_type = $2
				AND NOT is_dismissed
				AND created_at > $3
		)`

	queryGetAlert = baseAlertsSelect + ` WHERE id = $1`

	queryCountAlerts = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE NOT is_read),
			COUNT(*) FILTER (WHERE NOT is_read AND priority IN ('high', 'critical')),
			COUNT(*) FILTER (WHERE currency = 'RANK'),
			COUNT(*) FILTER (WHERE currency <> 'RANK')
		FROM alerts
		WHERE NOT is_dismissed`

	queryMarkAlertRead = `
		UPDATE alerts SET is_read = true, read_at = COALESCE(read_at, now())
		WHERE id = $1
		RETURNING ` + alertColumns

	queryMarkAllAlertsRead = `
		UPDATE alerts SET is_read = true, read_at = now()
		WHERE NOT is_read AND NOT is_dismissed`

	queryDismissAlert = `
		UPDATE alerts SET is_dismissed = true, dismissed_at = COALESCE(dismissed_at, now())
		WHERE id = $1
		RETURNING ` + alertColumns

	queryDismissAlerts = `
		UPDATE alerts SET is_dismissed = true, dismissed_at = now()
		WHERE id = ANY($1::uuid[]) AND NOT is_dismissed`

	// queryAlertTotals windows every figure except unread, which counts all
	// undismissed alerts still awaiting attention.
	queryAlertTotals = `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= $1),
			COUNT(*) FILTER (WHERE NOT is_read),
			COUNT(*) FILTER (WHERE created_at >= $1 AND priority = 'critical'),
			COUNT(*) FILTER (WHERE created_at >= $1 AND currency = 'RANK'),
			COUNT(*) FILTER (WHERE created_at >= $1 AND currency <> 'RANK')
		FROM alerts
		WHERE NOT is_dismissed`

	queryAlertsByType = `
		SELECT alert_type, COUNT(*)
		FROM alerts
		WHERE NOT is_dismissed AND created_at >= $1
		GROUP BY alert_type`

	queryAlertsByPriority = `
		SELECT priority, COUNT(*)
		FROM alerts
		WHERE NOT is_dismissed AND created_at >= $1
		GROUP BY priority`

	queryAlertTrend = `
		SELECT
			date_trunc('day', created_at AT TIME ZONE 'UTC') AS day,
			COUNT(*),
			COUNT(*) FILTER (WHERE currency = 'RANK'),
			COUNT(*) FILTER (WHERE currency <> 'RANK')
		FROM alerts
		WHERE NOT is_dismissed AND created_at >= $1
		GROUP BY day
		ORDER BY day DESC`

	queryListRankingIssues = baseAlertsSelect + `
		WHERE currency = 'RANK' AND NOT is_read AND NOT is_dismissed
		ORDER BY created_at DESC
		LIMIT $1`

	queryListPendingAlerts = baseAlertsSelect + `
		WHERE NOT notified AND NOT is_dismissed AND ` + priorityOrdinal + ` >= $1
		ORDER BY created_at ASC`

	queryMarkAlertsNotified = `
		UPDATE alerts SET notified = true, notified_at = now()
		WHERE id = ANY($1::uuid[])`

	queryDeleteDismissedAlertsBefore = `
		DELETE FROM alerts WHERE is_dismissed AND created_at < $1`
)

// Comparison history queries.
const (
	queryInsertComparison = `
		INSERT INTO competitor_comparison_history (
			our_asin, competitor_asin, kind, our_value, competitor_value,
			difference, percentage_difference
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, recorded_at`

	queryDeleteComparisonsBefore = `
		DELETE FROM competitor_comparison_history WHERE recorded_at < $1`
)

// Statistics queries.
const (
	queryMonitoringStats = `
		SELECT
			(SELECT COUNT(*) FROM snapshot_history),
			(SELECT COUNT(*) FROM alerts),
			(SELECT COUNT(*) FROM alerts WHERE created_at >= $1),
			(SELECT COUNT(*) FROM alerts WHERE NOT is_dismissed AND currency <> 'RANK'),
			(SELECT COUNT(*) FROM alerts WHERE NOT is_dismissed AND currency = 'RANK'),
			(SELECT COUNT(*) FROM historical_snapshots)`

	queryCompetitiveOverview = `
		SELECT
			(SELECT COUNT(DISTINCT our_seller_sku) FROM product_mappings),
			(SELECT COUNT(*) FROM product_mappings WHERE is_active),
			(SELECT COUNT(*) FROM price_observations WHERE side = 'own'),
			(SELECT COUNT(*) FROM rank_observations WHERE side = 'own'),
			(SELECT COUNT(*) FROM alerts WHERE NOT is_dismissed),
			(SELECT COUNT(DISTINCT asin) FROM alerts WHERE NOT is_dismissed),
			(SELECT COUNT(*) FROM alerts WHERE NOT is_dismissed AND currency = 'RANK'),
			(SELECT COUNT(*) FROM alerts WHERE NOT is_dismissed AND currency = 'RANK' AND priority = 'critical'),
			(SELECT COUNT(*) FROM alerts WHERE NOT is_dismissed AND currency <> 'RANK'),
			(SELECT COUNT(*) FROM alerts WHERE NOT is_dismissed AND currency <> 'RANK' AND priority = 'critical')`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteJobRunsBefore = `
		DELETE FROM job_runs WHERE started_at < $1 AND status <> 'running'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
