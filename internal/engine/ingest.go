package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// IngestResult reports how many observations in a batch were stored.
type IngestResult struct {
	Accepted int `json:"accepted"`
	Failed   int `json:"failed"`
}

// IngestPrices stores a batch of price observations delivered by the
// collector. Invalid or failing rows are counted, never returned.
func (eng *Engine) IngestPrices(ctx context.Context, obs []domain.PriceObservation) *IngestResult {
	res := &IngestResult{}
	for i := range obs {
		o := &obs[i]
		if err := normalizePrice(o); err != nil {
			eng.log.Warn("rejecting price observation", "asin", o.ASIN, "error", err)
			res.Failed++
			continue
		}
		if err := eng.store.InsertPriceObservation(ctx, o); err != nil {
			eng.log.Error("storing price observation", "asin", o.ASIN, "error", err)
			res.Failed++
			continue
		}
		metrics.ObservationsIngestedTotal.WithLabelValues("price", string(o.Side)).Inc()
		res.Accepted++
	}
	eng.logIngest(ctx, "price", res)
	return res
}

// IngestRanks stores a batch of rank observations delivered by the collector.
func (eng *Engine) IngestRanks(ctx context.Context, obs []domain.RankObservation) *IngestResult {
	res := &IngestResult{}
	for i := range obs {
		o := &obs[i]
		if err := normalizeRank(o); err != nil {
			eng.log.Warn("rejecting rank observation", "asin", o.ASIN, "error", err)
			res.Failed++
			continue
		}
		if err := eng.store.InsertRankObservation(ctx, o); err != nil {
			eng.log.Error("storing rank observation", "asin", o.ASIN, "error", err)
			res.Failed++
			continue
		}
		metrics.ObservationsIngestedTotal.WithLabelValues("rank", string(o.Side)).Inc()
		res.Accepted++
	}
	eng.logIngest(ctx, "rank", res)
	return res
}

func (eng *Engine) logIngest(ctx context.Context, kind string, res *IngestResult) {
	level := slog.LevelInfo
	if res.Failed > 0 {
		level = slog.LevelWarn
	}
	eng.log.Log(ctx, level, "observations ingested",
		"kind", kind,
		"accepted", res.Accepted,
		"failed", res.Failed,
	)
}

func normalizeSide(s domain.Side, belongsToRequester bool) (domain.Side, error) {
	switch s {
	case domain.SideOwn, domain.SideCompetitor:
		return s, nil
	case "":
		if belongsToRequester {
			return domain.SideOwn, nil
		}
		return domain.SideCompetitor, nil
	default:
		return "", fmt.Errorf("%w: unknown side %q", ErrInvalidInput, s)
	}
}

func normalizePrice(o *domain.PriceObservation) error {
	if o.ASIN == "" {
		return fmt.Errorf("%w: asin is required", ErrInvalidInput)
	}
	if !o.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	side, err := normalizeSide(o.Side, o.BelongsToRequester)
	if err != nil {
		return err
	}
	o.Side = side
	o.Currency = strings.ToUpper(o.Currency)
	if o.Currency == "" {
		o.Currency = domain.DefaultCurrency
	}
	return nil
}

func normalizeRank(o *domain.RankObservation) error {
	if o.ASIN == "" {
		return fmt.Errorf("%w: asin is required", ErrInvalidInput)
	}
	if o.Rank <= 0 {
		return fmt.Errorf("%w: rank must be positive", ErrInvalidInput)
	}
	side, err := normalizeSide(o.Side, false)
	if err != nil {
		return err
	}
	o.Side = side
	return nil
}

// ListMappings returns the active mappings for a seller SKU or, when sku is
// empty, for one of our ASINs.
func (eng *Engine) ListMappings(ctx context.Context, sellerSKU, ourASIN string) ([]domain.ProductMapping, error) {
	switch {
	case sellerSKU != "":
		mappings, err := eng.store.ListMappingsBySKU(ctx, sellerSKU)
		if err != nil {
			return nil, fmt.Errorf("listing mappings for %s: %w", sellerSKU, err)
		}
		return activeOnly(mappings), nil
	case ourASIN != "":
		return eng.ResolveMappings(ctx, ourASIN)
	default:
		return nil, fmt.Errorf("%w: sku or asin is required", ErrInvalidInput)
	}
}

// SaveMapping creates or updates the mapping for an (SKU, competitor ASIN)
// pair.
func (eng *Engine) SaveMapping(ctx context.Context, m *domain.ProductMapping) error {
	if m.OurSellerSKU == "" || m.CompetitorASIN == "" {
		return fmt.Errorf("%w: our_seller_sku and competitor_asin are required", ErrInvalidInput)
	}
	if m.Priority == 0 {
		m.Priority = 2
	}
	if m.Priority < 1 || m.Priority > 3 {
		return fmt.Errorf("%w: priority must be 1, 2 or 3", ErrInvalidInput)
	}
	if err := eng.store.UpsertMapping(ctx, m); err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}
	eng.log.Info("mapping saved",
		"seller_sku", m.OurSellerSKU,
		"competitor_asin", m.CompetitorASIN,
		"active", m.IsActive,
	)
	return nil
}
