package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/competitive-price-monitor/internal/store"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const (
	defaultHistoryDays  = 30
	defaultHistoryLimit = 100
	initializeBatchSize = 10
)

// GenericAlertInput describes a value movement between two observations of
// the same product, independent of any competitor comparison.
type GenericAlertInput struct {
	ASIN             string
	SellerSKU        string
	ProductName      string
	OldValue         decimal.Decimal
	NewValue         decimal.Decimal
	Currency         string
	CompetitorName   string
	ThresholdPercent decimal.Decimal
}

// CreatePriceAlert classifies and persists a generic price or rank movement
// alert. No dedup window applies on this path.
func (eng *Engine) CreatePriceAlert(ctx context.Context, in GenericAlertInput) (*domain.Alert, error) {
	if in.ASIN == "" {
		return nil, fmt.Errorf("%w: asin is required", ErrInvalidInput)
	}
	if in.OldValue.IsZero() {
		return nil, fmt.Errorf("%w: old value must be non-zero", ErrInvalidInput)
	}
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	change := in.NewValue.Sub(in.OldValue)
	pct := change.Div(in.OldValue).Mul(hundred).Round(4)

	a := &domain.Alert{
		ASIN:               in.ASIN,
		SellerSKU:          in.SellerSKU,
		OldValue:           in.OldValue,
		NewValue:           in.NewValue,
		ValueChange:        change,
		ChangePercent:      pct,
		Currency:           currency,
		CompetitorName:     in.CompetitorName,
		ThresholdTriggered: in.ThresholdPercent,
	}

	if currency == domain.CurrencyRank {
		a.AlertType = domain.AlertRankChange
		a.Priority = GenericRankSeverity(pct, change)
		a.Message = fmt.Sprintf("Rank moved from #%s to #%s (%s%%)",
			in.OldValue.String(), in.NewValue.String(), pct.StringFixed(1))
	} else {
		a.AlertType = GenericAlertType(change, pct)
		a.Priority = GenericPriceSeverity(pct)
		a.Message = fmt.Sprintf("Price moved from %s to %s (%s%%)",
			in.OldValue.StringFixed(2), in.NewValue.StringFixed(2), pct.StringFixed(1))
	}

	if in.ProductName != "" {
		name := in.ProductName
		a.ProductName = &name
	} else {
		a.ProductName = eng.resolveName(ctx, in.ASIN, in.SellerSKU)
	}

	if err := eng.store.CreateAlert(ctx, a); err != nil {
		return nil, fmt.Errorf("creating %s alert for %s: %w", a.AlertType, a.ASIN, err)
	}
	eng.recordAlertCreated(ctx, a)

	return a, nil
}

// RecordSnapshot replaces the last known value for the snapshot's ASIN and
// appends it to the snapshot history.
func (eng *Engine) RecordSnapshot(ctx context.Context, s *domain.Snapshot) error {
	if s == nil || s.ASIN == "" {
		return fmt.Errorf("%w: asin is required", ErrInvalidInput)
	}
	if s.Currency == "" {
		s.Currency = domain.DefaultCurrency
	}
	if s.ValueType == "" {
		if s.IsRank() {
			s.ValueType = domain.ValueOurRank
		} else {
			s.ValueType = domain.ValueCurrentPrice
		}
	}
	if s.RecordedAt.IsZero() {
		s.RecordedAt = eng.now().UTC()
	}

	if err := eng.store.RecordSnapshot(ctx, s); err != nil {
		return fmt.Errorf("recording snapshot for %s: %w", s.ASIN, err)
	}
	return nil
}

// CompareInput is a freshly observed value to compare against the last
// recorded snapshot.
type CompareInput struct {
	ASIN             string
	CurrentValue     decimal.Decimal
	Currency         string
	SellerSKU        string
	ProductName      string
	CompetitorName   string
	ThresholdPercent *decimal.Decimal
}

// CompareAndAlert compares in against the last recorded value for the ASIN.
// Without a prior snapshot the value becomes the baseline and no alert is
// raised. Otherwise a generic alert is raised when the absolute change
// reaches the threshold. The snapshot is overwritten with the current value
// in every case, before the alert is persisted.
func (eng *Engine) CompareAndAlert(ctx context.Context, in CompareInput) (*domain.CompareResult, error) {
	if in.ASIN == "" {
		return nil, fmt.Errorf("%w: asin is required", ErrInvalidInput)
	}
	threshold := eng.compareThreshold
	if in.ThresholdPercent != nil {
		threshold = *in.ThresholdPercent
	}
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	snap := &domain.Snapshot{
		ASIN:       in.ASIN,
		Value:      in.CurrentValue,
		Currency:   currency,
		SellerSKU:  in.SellerSKU,
		DataSource: "compare",
	}

	prev, err := eng.store.GetSnapshot(ctx, in.ASIN)
	if errors.Is(err, store.ErrNotFound) {
		if err := eng.RecordSnapshot(ctx, snap); err != nil {
			return nil, err
		}
		return &domain.CompareResult{
			Message:      "no prior data, stored baseline",
			CurrentValue: in.CurrentValue,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot for %s: %w", in.ASIN, err)
	}

	previous := prev.Value
	res := &domain.CompareResult{
		PreviousValue: &previous,
		CurrentValue:  in.CurrentValue,
	}

	// The baseline moves before any alert is written, so a failed snapshot
	// never leaves an alert behind that a retry would raise again.
	if err := eng.RecordSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	if previous.IsZero() {
		res.Message = "previous value was zero, snapshot updated"
		return res, nil
	}

	res.ChangePercent = in.CurrentValue.Sub(previous).Div(previous).Mul(hundred).Abs().Round(4)

	if res.ChangePercent.LessThan(threshold) {
		res.Message = fmt.Sprintf("change of %s%% below threshold", res.ChangePercent.StringFixed(2))
		return res, nil
	}

	a, err := eng.CreatePriceAlert(ctx, GenericAlertInput{
		ASIN:             in.ASIN,
		SellerSKU:        in.SellerSKU,
		ProductName:      in.ProductName,
		OldValue:         previous,
		NewValue:         in.CurrentValue,
		Currency:         currency,
		CompetitorName:   in.CompetitorName,
		ThresholdPercent: threshold,
	})
	if err != nil {
		return nil, err
	}

	res.AlertCreated = true
	res.Alert = a
	res.Message = fmt.Sprintf("%s alert created", a.Priority)
	return res, nil
}

// PriceHistory returns recorded price points for asin, newest first.
func (eng *Engine) PriceHistory(ctx context.Context, asin string, days, limit int) ([]domain.Snapshot, error) {
	return eng.history(ctx, asin, store.HistoryPrice, days, limit)
}

// RankHistory returns recorded rank points for asin, newest first.
func (eng *Engine) RankHistory(ctx context.Context, asin string, days, limit int) ([]domain.Snapshot, error) {
	return eng.history(ctx, asin, store.HistoryRank, days, limit)
}

func (eng *Engine) history(
	ctx context.Context,
	asin string,
	kind store.HistoryKind,
	days, limit int,
) ([]domain.Snapshot, error) {
	if asin == "" {
		return nil, fmt.Errorf("%w: asin is required", ErrInvalidInput)
	}
	if days <= 0 {
		days = defaultHistoryDays
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	since := eng.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	points, err := eng.store.ListSnapshotHistory(ctx, asin, kind, since, limit)
	if err != nil {
		return nil, fmt.Errorf("listing %s history for %s: %w", kind, asin, err)
	}
	return points, nil
}

// InitializeMonitoring records a baseline price snapshot for each ASIN from
// its latest own price observation. ASINs without a price count as failed.
func (eng *Engine) InitializeMonitoring(ctx context.Context, asins []string) (*domain.InitializeResult, error) {
	res := &domain.InitializeResult{}
	if len(asins) == 0 {
		return res, nil
	}

	prices, err := eng.store.LatestOwnPrices(ctx, domain.ProductSelection{ASINs: asins})
	if err != nil {
		return nil, fmt.Errorf("loading own prices: %w", err)
	}
	byASIN := make(map[string]*domain.PriceObservation, len(prices))
	for i := range prices {
		byASIN[prices[i].ASIN] = &prices[i]
	}

	for _, asin := range asins {
		p, ok := byASIN[asin]
		if !ok || !p.Amount.IsPositive() {
			eng.log.Warn("no price observation to initialize from", "asin", asin)
			res.Failed++
			continue
		}
		err := eng.RecordSnapshot(ctx, &domain.Snapshot{
			ASIN:               asin,
			Value:              p.Amount,
			Currency:           p.Currency,
			SellerSKU:          p.SellerSKU,
			ValueType:          domain.ValueBaselinePrice,
			Condition:          p.Condition,
			FulfillmentChannel: p.FulfillmentChannel,
			DataSource:         "initialization",
		})
		if err != nil {
			eng.log.Error("initializing snapshot failed", "asin", asin, "error", err)
			res.Failed++
			continue
		}
		res.Initialized++
	}

	return res, nil
}

// InitializeFromObservations initializes every own ASIN that has
// observations but no snapshot yet.
func (eng *Engine) InitializeFromObservations(ctx context.Context) (*domain.InitializeResult, error) {
	asins, err := eng.store.ListUnsnapshottedOwnASINs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing unsnapshotted asins: %w", err)
	}

	total := &domain.InitializeResult{}
	for start := 0; start < len(asins); start += initializeBatchSize {
		end := min(start+initializeBatchSize, len(asins))
		res, err := eng.InitializeMonitoring(ctx, asins[start:end])
		if err != nil {
			eng.log.Error("initialization batch failed", "batch_start", start, "error", err)
			total.Failed += end - start
			continue
		}
		total.Initialized += res.Initialized
		total.Failed += res.Failed
	}

	eng.log.Info("monitoring initialized", "initialized", total.Initialized, "failed", total.Failed)
	return total, nil
}
