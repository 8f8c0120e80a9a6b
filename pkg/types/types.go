// Package domain defines the core business types for the competitive price monitor.
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRank marks a snapshot or alert value as a sales rank rather than a price.
const CurrencyRank = "RANK"

// DefaultCurrency is used when an observation carries no currency.
const DefaultCurrency = "USD"

// DefaultCondition is used when an observation carries no condition.
const DefaultCondition = "New"

// Side distinguishes our own listings from competitor listings in the observation feeds.
type Side string

// Side constants.
const (
	SideOwn        Side = "own"
	SideCompetitor Side = "competitor"
)

// Severity is the ordinal alert priority tier.
type Severity string

// Severity constants, lowest to highest.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityOrder = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the ordinal of s (low=1 … critical=4), or 0 for unknown values.
func (s Severity) Rank() int {
	return severityOrder[s]
}

// Escalate returns the next tier up, capped at critical.
func (s Severity) Escalate() Severity {
	switch s {
	case SeverityLow:
		return SeverityMedium
	case SeverityMedium:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// AtLeast reports whether s ranks at or above min.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}

// ParseSeverity validates a severity string.
func ParseSeverity(v string) (Severity, error) {
	s := Severity(v)
	if s.Rank() == 0 {
		return "", fmt.Errorf("unknown severity %q", v)
	}
	return s, nil
}

// AlertType classifies what triggered an alert.
type AlertType string

// Alert type constants.
const (
	AlertCompetitorUndercut AlertType = "competitor_undercut"
	AlertRankComparison     AlertType = "rank_comparison"
	AlertPriceIncrease      AlertType = "price_increase"
	AlertPriceDecrease      AlertType = "price_decrease"
	AlertSignificantChange  AlertType = "significant_change"
	AlertRankChange         AlertType = "rank_change"
)

// Snapshot value types.
const (
	ValueBaselinePrice      = "baseline_price"
	ValueCurrentPrice       = "current_price"
	ValueOurRank            = "our_rank"
	ValueCompetitorBestRank = "competitor_best_rank"
)

// ProductMapping links one of our products to a competitor product.
type ProductMapping struct {
	ID             string     `json:"id"                        db:"id"`
	OurSellerSKU   string     `json:"our_seller_sku"            db:"our_seller_sku"`
	OurASIN        string     `json:"our_asin,omitempty"        db:"our_asin"`
	CompetitorASIN string     `json:"competitor_asin"           db:"competitor_asin"`
	Priority       int        `json:"priority"                  db:"priority"`
	IsActive       bool       `json:"is_active"                 db:"is_active"`
	Reason         string     `json:"reason,omitempty"          db:"reason"`
	LastCheckedAt  *time.Time `json:"last_checked_at,omitempty" db:"last_checked_at"`
	CreatedAt      time.Time  `json:"created_at"                db:"created_at"`
}

// PriceObservation is a single observed price delivered by the ingestion feed.
type PriceObservation struct {
	ID                 string          `json:"id"                  db:"id"`
	ASIN               string          `json:"asin"                db:"asin"`
	SellerSKU          string          `json:"seller_sku"          db:"seller_sku"`
	Amount             decimal.Decimal `json:"amount"              db:"amount"`
	Currency           string          `json:"currency"            db:"currency"`
	Condition          string          `json:"condition"           db:"condition"`
	FulfillmentChannel string          `json:"fulfillment_channel" db:"fulfillment_channel"`
	BelongsToRequester bool            `json:"belongs_to_requester" db:"belongs_to_requester"`
	Side               Side            `json:"side"                db:"side"`
	CapturedAt         time.Time       `json:"captured_at"         db:"captured_at"`
}

// RankObservation is a single observed sales rank delivered by the ingestion feed.
type RankObservation struct {
	ID         string    `json:"id"                 db:"id"`
	ASIN       string    `json:"asin"               db:"asin"`
	SellerSKU  string    `json:"seller_sku"         db:"seller_sku"`
	Rank       int64     `json:"rank"               db:"rank"`
	Category   string    `json:"category,omitempty" db:"category"`
	Side       Side      `json:"side"               db:"side"`
	CapturedAt time.Time `json:"captured_at"        db:"captured_at"`
}

// Snapshot is the engine's condensed record of an observed price or rank.
type Snapshot struct {
	ID                 string          `json:"id"                  db:"id"`
	ASIN               string          `json:"asin"                db:"asin"`
	Value              decimal.Decimal `json:"value"               db:"value"`
	Currency           string          `json:"currency"            db:"currency"`
	SellerSKU          string          `json:"seller_sku"          db:"seller_sku"`
	ValueType          string          `json:"value_type"          db:"value_type"`
	Condition          string          `json:"condition"           db:"condition"`
	FulfillmentChannel string          `json:"fulfillment_channel" db:"fulfillment_channel"`
	DataSource         string          `json:"data_source"         db:"data_source"`
	RecordedAt         time.Time       `json:"recorded_at"         db:"recorded_at"`
	Notified           bool            `json:"notified"            db:"notified"`
}

// IsRank reports whether the snapshot holds a sales rank.
func (s *Snapshot) IsRank() bool {
	return s.Currency == CurrencyRank
}

// Alert is the durable output of the decision engine.
type Alert struct {
	ID                 string          `json:"id"                     db:"id"`
	ASIN               string          `json:"asin"                   db:"asin"`
	SellerSKU          string          `json:"seller_sku"             db:"seller_sku"`
	ProductName        *string         `json:"product_name,omitempty" db:"product_name"`
	OldValue           decimal.Decimal `json:"old_value"              db:"old_value"`
	NewValue           decimal.Decimal `json:"new_value"              db:"new_value"`
	ValueChange        decimal.Decimal `json:"value_change"           db:"value_change"`
	ChangePercent      decimal.Decimal `json:"change_percent"         db:"change_percent"`
	Currency           string          `json:"currency"               db:"currency"`
	AlertType          AlertType       `json:"alert_type"             db:"alert_type"`
	CompetitorName     string          `json:"competitor_name,omitempty" db:"competitor_name"`
	Message            string          `json:"message,omitempty"      db:"message"`
	Priority           Severity        `json:"priority"               db:"priority"`
	ThresholdTriggered decimal.Decimal `json:"threshold_triggered"    db:"threshold_triggered"`
	Notified           bool            `json:"notified"               db:"notified"`
	NotifiedAt         *time.Time      `json:"notified_at,omitempty"  db:"notified_at"`
	IsRead             bool            `json:"is_read"                db:"is_read"`
	ReadAt             *time.Time      `json:"read_at,omitempty"      db:"read_at"`
	IsDismissed        bool            `json:"is_dismissed"           db:"is_dismissed"`
	DismissedAt        *time.Time      `json:"dismissed_at,omitempty" db:"dismissed_at"`
	CreatedAt          time.Time       `json:"created_at"             db:"created_at"`
}

// IsRank reports whether the alert concerns sales rank rather than price.
func (a *Alert) IsRank() bool {
	return a.Currency == CurrencyRank
}

// DisplayName returns the resolved product name, falling back to the ASIN.
func (a *Alert) DisplayName() string {
	if a.ProductName != nil && *a.ProductName != "" {
		return *a.ProductName
	}
	return a.ASIN
}

// CatalogProduct is a row from the primary product catalog.
type CatalogProduct struct {
	ASIN      string `json:"asin"       db:"asin"`
	ItemName  string `json:"item_name"  db:"item_name"`
	SellerSKU string `json:"seller_sku" db:"seller_sku"`
}

// OrderMapping is an order/listing mapping row that may carry a product name.
type OrderMapping struct {
	ASIN        string `json:"asin"         db:"amzn_asin"`
	SellerSKU   string `json:"seller_sku"   db:"amzn_sku"`
	UnifiedName string `json:"unified_name" db:"unified_product_name"`
	SourceName  string `json:"source_name"  db:"amzn_product_name"`
}

// PriceComparison is emitted when a mapped competitor undercuts our price.
type PriceComparison struct {
	OurASIN              string          `json:"our_asin"`
	OurSellerSKU         string          `json:"our_seller_sku"`
	OurPrice             decimal.Decimal `json:"our_price"`
	CompetitorPrice      decimal.Decimal `json:"competitor_price"`
	CompetitorASIN       string          `json:"competitor_asin"`
	PriceDifference      decimal.Decimal `json:"price_difference"`
	PercentageDifference decimal.Decimal `json:"percentage_difference"`
	Currency             string          `json:"currency"`
	Condition            string          `json:"condition"`
}

// RankComparison is emitted when a mapped competitor outranks us.
type RankComparison struct {
	OurASIN               string          `json:"our_asin"`
	OurSellerSKU          string          `json:"our_seller_sku"`
	OurBestRank           int64           `json:"our_best_rank"`
	OurWorstRank          int64           `json:"our_worst_rank"`
	CompetitorBestRank    int64           `json:"competitor_best_rank"`
	BestCompetitorASIN    string          `json:"best_competitor_asin"`
	RankDifference        int64           `json:"rank_difference"`
	PercentageDifference  decimal.Decimal `json:"percentage_difference"`
	CompetitorsAhead      int             `json:"competitors_ahead"`
	CompetitorsConsidered int             `json:"competitors_considered"`
	Severity              Severity        `json:"severity"`
	Escalated             bool            `json:"escalated"`
}

// ComparisonRecord is one row of the competitor comparison history.
type ComparisonRecord struct {
	ID                   string          `json:"id"                    db:"id"`
	OurASIN              string          `json:"our_asin"              db:"our_asin"`
	CompetitorASIN       string          `json:"competitor_asin"       db:"competitor_asin"`
	Kind                 string          `json:"kind"                  db:"kind"`
	OurValue             decimal.Decimal `json:"our_value"             db:"our_value"`
	CompetitorValue      decimal.Decimal `json:"competitor_value"      db:"competitor_value"`
	Difference           decimal.Decimal `json:"difference"            db:"difference"`
	PercentageDifference decimal.Decimal `json:"percentage_difference" db:"percentage_difference"`
	RecordedAt           time.Time       `json:"recorded_at"           db:"recorded_at"`
}

// ProductSelection restricts a monitoring run to explicit identifiers.
// Empty lists select every product; when both are set a product must
// match both.
type ProductSelection struct {
	ASINs      []string `json:"asins,omitempty"`
	SellerSKUs []string `json:"seller_skus,omitempty"`
}

// RunConfig configures one monitoring cycle.
type RunConfig struct {
	Selection        ProductSelection `json:"selection"`
	ThresholdPercent decimal.Decimal  `json:"threshold_percent"`
	Interval         time.Duration    `json:"interval"`
}

// RunResult summarizes one monitoring cycle.
type RunResult struct {
	Processed          int           `json:"processed"`
	Failed             int           `json:"failed"`
	PriceAlertsCreated int           `json:"price_alerts_created"`
	RankAlertsCreated  int           `json:"rank_alerts_created"`
	Duration           time.Duration `json:"duration"`
}

// CleanupStep reports the outcome of deleting from one store.
type CleanupStep struct {
	Store   string `json:"store"`
	Deleted int64  `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// CleanupResult summarizes one retention sweep.
type CleanupResult struct {
	Steps []CleanupStep `json:"steps"`
}

// TotalDeleted sums deletions across all steps.
func (r *CleanupResult) TotalDeleted() int64 {
	var n int64
	for _, s := range r.Steps {
		n += s.Deleted
	}
	return n
}

// Failed reports whether any step failed.
func (r *CleanupResult) Failed() bool {
	for _, s := range r.Steps {
		if s.Error != "" {
			return true
		}
	}
	return false
}

// AlertFilter selects a category of alerts for listing.
type AlertFilter string

// Alert filter constants.
const (
	FilterAll          AlertFilter = "all"
	FilterUnread       AlertFilter = "unread"
	FilterHighPriority AlertFilter = "high_priority"
	FilterRankAlerts   AlertFilter = "rank_alerts"
	FilterPriceAlerts  AlertFilter = "price_alerts"
)

// Valid reports whether f is a known filter.
func (f AlertFilter) Valid() bool {
	switch f {
	case FilterAll, FilterUnread, FilterHighPriority, FilterRankAlerts, FilterPriceAlerts:
		return true
	}
	return false
}

// AlertCounts holds the per-filter totals returned alongside an alert listing.
type AlertCounts struct {
	Total        int `json:"total"`
	Unread       int `json:"unread"`
	HighPriority int `json:"high_priority"`
	RankAlerts   int `json:"rank_alerts"`
	PriceAlerts  int `json:"price_alerts"`
}

// AlertPage is one page of alerts plus category counts.
type AlertPage struct {
	Alerts []Alert     `json:"alerts"`
	Counts AlertCounts `json:"counts"`
	Filter AlertFilter `json:"filter"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// TrendPoint is one day bucket of the alert trend.
type TrendPoint struct {
	Date       time.Time `json:"date"`
	Count      int       `json:"count"`
	RankCount  int       `json:"rank_count"`
	PriceCount int       `json:"price_count"`
}

// AlertStatistics aggregates alerts created within a window.
type AlertStatistics struct {
	WindowDays  int            `json:"window_days"`
	Total       int            `json:"total"`
	Unread      int            `json:"unread"`
	Critical    int            `json:"critical"`
	ByType      map[string]int `json:"by_type"`
	ByPriority  map[string]int `json:"by_priority"`
	RankAlerts  int            `json:"rank_alerts"`
	PriceAlerts int            `json:"price_alerts"`
	RecentTrend []TrendPoint   `json:"recent_trend"`
}

// MonitoringStats summarizes the monitoring data set.
type MonitoringStats struct {
	SnapshotRecords   int        `json:"snapshot_records"`
	TotalAlerts       int        `json:"total_alerts"`
	RecentAlerts      int        `json:"recent_alerts"`
	PriceAlerts       int        `json:"price_alerts"`
	RankAlerts        int        `json:"rank_alerts"`
	MonitoredProducts int        `json:"monitored_products"`
	LastRunAt         *time.Time `json:"last_run_at,omitempty"`
	LastRunStatus     string     `json:"last_run_status,omitempty"`
}

// CompetitiveOverview holds headline counts for the competitive data set.
type CompetitiveOverview struct {
	MappedProducts      int `json:"mapped_products"`
	ActiveMappings      int `json:"active_mappings"`
	PricePoints         int `json:"price_points"`
	RankPoints          int `json:"rank_points"`
	ActiveAlerts        int `json:"active_alerts"`
	ProductsWithAlerts  int `json:"products_with_alerts"`
	RankAlerts          int `json:"rank_alerts"`
	CriticalRankAlerts  int `json:"critical_rank_alerts"`
	PriceAlerts         int `json:"price_alerts"`
	CriticalPriceAlerts int `json:"critical_price_alerts"`
}

// CompareResult reports the outcome of comparing a value against its snapshot.
type CompareResult struct {
	AlertCreated  bool             `json:"alert_created"`
	Message       string           `json:"message"`
	PreviousValue *decimal.Decimal `json:"previous_value,omitempty"`
	CurrentValue  decimal.Decimal  `json:"current_value"`
	ChangePercent decimal.Decimal  `json:"change_percent"`
	Alert         *Alert           `json:"alert,omitempty"`
}

// InitializeResult reports how many products received a baseline snapshot.
type InitializeResult struct {
	Initialized int `json:"initialized"`
	Failed      int `json:"failed"`
}

// JobSummary is the latest run of a scheduled job and, when the scheduler
// is enabled, its next run time.
type JobSummary struct {
	JobName   string     `json:"job_name"`
	LastRun   *JobRun    `json:"last_run,omitempty"`
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
