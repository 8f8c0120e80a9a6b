package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

var (
	pct5   = decimal.NewFromInt(5)
	pct10  = decimal.NewFromInt(10)
	pct15  = decimal.NewFromInt(15)
	pct20  = decimal.NewFromInt(20)
	pct25  = decimal.NewFromInt(25)
	pct30  = decimal.NewFromInt(30)
	pct50  = decimal.NewFromInt(50)
	pct100 = decimal.NewFromInt(100)
)

// UndercutSeverity classifies a competitor undercut by how much cheaper the
// competitor is, in percent of our price.
func UndercutSeverity(pct decimal.Decimal) domain.Severity {
	pct = pct.Abs()
	switch {
	case pct.GreaterThanOrEqual(pct30):
		return domain.SeverityCritical
	case pct.GreaterThanOrEqual(pct20):
		return domain.SeverityHigh
	case pct.GreaterThanOrEqual(pct10):
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// RankSeverity is the base tier for an outranked product, before escalation.
func RankSeverity(pct decimal.Decimal, rankDiff int64) domain.Severity {
	switch {
	case pct.GreaterThanOrEqual(pct50):
		return domain.SeverityCritical
	case pct.GreaterThanOrEqual(pct25):
		return domain.SeverityHigh
	case rankDiff >= 10:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// GenericPriceSeverity classifies a price movement between two observations.
func GenericPriceSeverity(pct decimal.Decimal) domain.Severity {
	pct = pct.Abs()
	switch {
	case pct.GreaterThanOrEqual(pct30):
		return domain.SeverityCritical
	case pct.GreaterThanOrEqual(pct15):
		return domain.SeverityHigh
	case pct.GreaterThanOrEqual(pct5):
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// GenericRankSeverity classifies a rank movement between two observations.
func GenericRankSeverity(pct, rankDiff decimal.Decimal) domain.Severity {
	pct, rankDiff = pct.Abs(), rankDiff.Abs()
	switch {
	case pct.GreaterThanOrEqual(pct100) || rankDiff.GreaterThanOrEqual(pct50):
		return domain.SeverityCritical
	case pct.GreaterThanOrEqual(pct50) || rankDiff.GreaterThanOrEqual(pct20):
		return domain.SeverityHigh
	case pct.GreaterThanOrEqual(pct25) || rankDiff.GreaterThanOrEqual(pct10):
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// GenericAlertType classifies a price movement: large moves are
// significant_change, others follow the direction of change.
func GenericAlertType(change, pct decimal.Decimal) domain.AlertType {
	switch {
	case pct.Abs().GreaterThanOrEqual(pct25):
		return domain.AlertSignificantChange
	case change.IsPositive():
		return domain.AlertPriceIncrease
	default:
		return domain.AlertPriceDecrease
	}
}

// DecidePriceAlert persists a competitor_undercut alert for cmp unless the
// competitor is not cheaper, the gap is below threshold, or an alert of the
// same type for the product exists within the dedup window.
func (eng *Engine) DecidePriceAlert(
	ctx context.Context,
	cmp *domain.PriceComparison,
	threshold decimal.Decimal,
) (bool, error) {
	if cmp == nil || !cmp.PriceDifference.IsPositive() {
		return false, nil
	}
	if cmp.PercentageDifference.Abs().LessThan(threshold) {
		return false, nil
	}

	pct := cmp.PercentageDifference
	a := &domain.Alert{
		ASIN:               cmp.OurASIN,
		SellerSKU:          cmp.OurSellerSKU,
		OldValue:           cmp.OurPrice,
		NewValue:           cmp.CompetitorPrice,
		ValueChange:        cmp.PriceDifference,
		ChangePercent:      pct,
		Currency:           cmp.Currency,
		AlertType:          domain.AlertCompetitorUndercut,
		CompetitorName:     cmp.CompetitorASIN,
		Priority:           UndercutSeverity(pct),
		ThresholdTriggered: threshold,
		Message: fmt.Sprintf(
			"Competitor %s is %s%% cheaper (%s vs our %s)",
			cmp.CompetitorASIN, pct.StringFixed(1),
			cmp.CompetitorPrice.StringFixed(2), cmp.OurPrice.StringFixed(2),
		),
	}

	return eng.persistDeduplicated(ctx, a)
}

// DecideRankAlert persists a rank_comparison alert for cmp under the same
// rules as DecidePriceAlert, using the comparator's escalated severity.
func (eng *Engine) DecideRankAlert(
	ctx context.Context,
	cmp *domain.RankComparison,
	threshold decimal.Decimal,
) (bool, error) {
	if cmp == nil || cmp.CompetitorBestRank >= cmp.OurBestRank {
		return false, nil
	}
	if cmp.PercentageDifference.Abs().LessThan(threshold) {
		return false, nil
	}

	severity := cmp.Severity
	if severity.Rank() == 0 {
		severity = RankSeverity(cmp.PercentageDifference, cmp.RankDifference)
	}

	a := &domain.Alert{
		ASIN:               cmp.OurASIN,
		SellerSKU:          cmp.OurSellerSKU,
		OldValue:           decimal.NewFromInt(cmp.OurBestRank),
		NewValue:           decimal.NewFromInt(cmp.CompetitorBestRank),
		ValueChange:        decimal.NewFromInt(cmp.RankDifference),
		ChangePercent:      cmp.PercentageDifference,
		Currency:           domain.CurrencyRank,
		AlertType:          domain.AlertRankComparison,
		CompetitorName:     rankCompetitorLabel(cmp),
		Priority:           severity,
		ThresholdTriggered: threshold,
		Message:            rankMessage(cmp),
	}

	return eng.persistDeduplicated(ctx, a)
}

func rankCompetitorLabel(cmp *domain.RankComparison) string {
	best := cmp.BestCompetitorASIN
	if best == "" {
		best = "Unknown"
	}
	return fmt.Sprintf("Best: %s (%d/%d ahead)", best, cmp.CompetitorsAhead, cmp.CompetitorsConsidered)
}

func rankMessage(cmp *domain.RankComparison) string {
	var msg string
	switch RankSeverity(cmp.PercentageDifference, cmp.RankDifference) {
	case domain.SeverityCritical:
		msg = "Critical: Competitor ranked significantly higher"
	case domain.SeverityHigh:
		msg = "High: Competitor ranked considerably higher"
	case domain.SeverityMedium:
		msg = "Medium: Competitor ranked higher"
	default:
		msg = "Low: Competitor ranked slightly higher"
	}
	msg += fmt.Sprintf(" (%d vs our %d)", cmp.CompetitorBestRank, cmp.OurBestRank)
	if cmp.Escalated {
		msg += fmt.Sprintf(" | %d/%d competitors ahead", cmp.CompetitorsAhead, cmp.CompetitorsConsidered)
	}
	return msg
}

// dedupSlot returns the oldest creation time that still suppresses a repeat
// alert and the start of the window-aligned slot now falls in.
func (eng *Engine) dedupSlot() (since, bucket time.Time) {
	now := eng.now().UTC()
	return now.Add(-eng.dedupWindow), now.Truncate(eng.dedupWindow)
}

// persistDeduplicated resolves the display name and inserts a only when no
// non-dismissed alert of the same type for the product exists within the
// dedup window. The check and insert are one statement.
func (eng *Engine) persistDeduplicated(ctx context.Context, a *domain.Alert) (bool, error) {
	a.ProductName = eng.resolveName(ctx, a.ASIN, a.SellerSKU)

	since, bucket := eng.dedupSlot()
	created, err := eng.store.CreateAlertIfAbsent(ctx, a, since, bucket)
	if err != nil {
		return false, fmt.Errorf("creating %s alert for %s: %w", a.AlertType, a.ASIN, err)
	}
	if !created {
		metrics.AlertsDeduplicatedTotal.Inc()
		eng.log.Debug("alert suppressed by dedup window", "asin", a.ASIN, "type", a.AlertType)
		return false, nil
	}

	eng.recordAlertCreated(ctx, a)
	return true, nil
}

func (eng *Engine) recordAlertCreated(ctx context.Context, a *domain.Alert) {
	metrics.AlertsCreatedTotal.WithLabelValues(string(a.AlertType), string(a.Priority)).Inc()
	eng.alertCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", string(a.AlertType)),
		attribute.String("priority", string(a.Priority)),
	))
	eng.log.InfoContext(ctx, "alert created",
		"asin", a.ASIN,
		"type", a.AlertType,
		"priority", a.Priority,
		"change_percent", a.ChangePercent.StringFixed(2),
	)
}
