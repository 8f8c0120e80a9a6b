package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const (
	comparisonKindPrice = "price"
	comparisonKindRank  = "rank"
)

// cycleCounters accumulates per-unit outcomes across the fan-out.
type cycleCounters struct {
	processed   atomic.Int64
	failed      atomic.Int64
	priceAlerts atomic.Int64
	rankAlerts  atomic.Int64
}

// RunMonitoringCycle compares every selected product against its mapped
// competitors on price and on rank, and persists alerts for regressions at
// or above the configured threshold. Each price or rank evaluation is one
// unit; a unit that fails is counted and logged and does not stop the cycle.
// An error is returned only when the product set cannot be loaded.
func (eng *Engine) RunMonitoringCycle(ctx context.Context, cfg domain.RunConfig) (*domain.RunResult, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RunMonitoringCycle")
	defer span.End()

	start := eng.now()
	eng.log.InfoContext(ctx, "monitoring cycle starting",
		"asins", len(cfg.Selection.ASINs),
		"seller_skus", len(cfg.Selection.SellerSKUs),
		"threshold_percent", cfg.ThresholdPercent.String(),
	)

	prices, err := eng.store.LatestOwnPrices(ctx, cfg.Selection)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "loading own prices")
		return nil, fmt.Errorf("loading own prices: %w", err)
	}
	ranks, err := eng.store.ListOwnRanks(ctx, cfg.Selection)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "loading own ranks")
		return nil, fmt.Errorf("loading own ranks: %w", err)
	}
	rankUnits := groupOwnRanks(ranks)

	var c cycleCounters
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.concurrency)

	for i := range prices {
		own := &prices[i]
		g.Go(func() error {
			eng.runUnit(gctx, &c, comparisonKindPrice, own.ASIN, func(ctx context.Context) (bool, error) {
				return eng.priceUnit(ctx, own, cfg.ThresholdPercent)
			})
			return nil
		})
	}
	for _, u := range rankUnits {
		g.Go(func() error {
			eng.runUnit(gctx, &c, comparisonKindRank, u.asin, func(ctx context.Context) (bool, error) {
				return eng.rankUnit(ctx, u, cfg.ThresholdPercent)
			})
			return nil
		})
	}
	_ = g.Wait()

	res := &domain.RunResult{
		Processed:          int(c.processed.Load()),
		Failed:             int(c.failed.Load()),
		PriceAlertsCreated: int(c.priceAlerts.Load()),
		RankAlertsCreated:  int(c.rankAlerts.Load()),
		Duration:           eng.now().Sub(start),
	}

	metrics.MonitoringCycleDuration.Observe(res.Duration.Seconds())
	span.SetAttributes(
		attribute.Int("cpm.processed", res.Processed),
		attribute.Int("cpm.failed", res.Failed),
		attribute.Int("cpm.price_alerts", res.PriceAlertsCreated),
		attribute.Int("cpm.rank_alerts", res.RankAlertsCreated),
	)
	eng.log.InfoContext(ctx, "monitoring cycle complete",
		"processed", res.Processed,
		"failed", res.Failed,
		"price_alerts", res.PriceAlertsCreated,
		"rank_alerts", res.RankAlertsCreated,
		"duration", res.Duration,
	)

	return res, nil
}

func (eng *Engine) runUnit(
	ctx context.Context,
	c *cycleCounters,
	kind, asin string,
	fn func(context.Context) (bool, error),
) {
	created, err := fn(ctx)
	if err != nil {
		c.failed.Add(1)
		metrics.ProductFailuresTotal.Inc()
		eng.log.ErrorContext(ctx, "monitoring unit failed", "kind", kind, "asin", asin, "error", err)
		return
	}
	c.processed.Add(1)
	metrics.ProductsProcessedTotal.Inc()
	if !created {
		return
	}
	if kind == comparisonKindRank {
		c.rankAlerts.Add(1)
	} else {
		c.priceAlerts.Add(1)
	}
}

func (eng *Engine) priceUnit(
	ctx context.Context,
	own *domain.PriceObservation,
	threshold decimal.Decimal,
) (bool, error) {
	cmp, err := eng.comparePrice(ctx, own)
	if err != nil {
		return false, err
	}
	eng.touchMappings(ctx, own.SellerSKU)
	if cmp == nil {
		return false, nil
	}

	metrics.ComparisonsTotal.WithLabelValues(comparisonKindPrice).Inc()
	eng.recordComparison(ctx, &domain.ComparisonRecord{
		OurASIN:              cmp.OurASIN,
		CompetitorASIN:       cmp.CompetitorASIN,
		Kind:                 comparisonKindPrice,
		OurValue:             cmp.OurPrice,
		CompetitorValue:      cmp.CompetitorPrice,
		Difference:           cmp.PriceDifference,
		PercentageDifference: cmp.PercentageDifference,
	})

	return eng.DecidePriceAlert(ctx, cmp, threshold)
}

func (eng *Engine) rankUnit(ctx context.Context, u rankUnit, threshold decimal.Decimal) (bool, error) {
	cmp, err := eng.compareRank(ctx, u)
	if err != nil {
		return false, err
	}
	eng.touchMappings(ctx, u.sellerSKU)
	if cmp == nil {
		return false, nil
	}

	metrics.ComparisonsTotal.WithLabelValues(comparisonKindRank).Inc()
	eng.recordComparison(ctx, &domain.ComparisonRecord{
		OurASIN:              cmp.OurASIN,
		CompetitorASIN:       cmp.BestCompetitorASIN,
		Kind:                 comparisonKindRank,
		OurValue:             decimal.NewFromInt(cmp.OurBestRank),
		CompetitorValue:      decimal.NewFromInt(cmp.CompetitorBestRank),
		Difference:           decimal.NewFromInt(cmp.RankDifference),
		PercentageDifference: cmp.PercentageDifference,
	})

	return eng.DecideRankAlert(ctx, cmp, threshold)
}

// recordComparison appends to the comparison history. Failures only log.
func (eng *Engine) recordComparison(ctx context.Context, rec *domain.ComparisonRecord) {
	rec.RecordedAt = eng.now().UTC()
	if err := eng.store.InsertComparison(ctx, rec); err != nil {
		eng.log.WarnContext(ctx, "recording comparison history", "asin", rec.OurASIN, "kind", rec.Kind, "error", err)
	}
}

func (eng *Engine) touchMappings(ctx context.Context, sellerSKU string) {
	if sellerSKU == "" {
		return
	}
	if err := eng.store.TouchMappings(ctx, sellerSKU, eng.now().UTC()); err != nil {
		eng.log.WarnContext(ctx, "updating mapping last checked", "seller_sku", sellerSKU, "error", err)
	}
}

// RunConfigFor builds a cycle configuration from explicit allow-lists and a
// threshold, falling back to all products.
func RunConfigFor(asins, skus []string, thresholdPercent float64, interval time.Duration) domain.RunConfig {
	return domain.RunConfig{
		Selection:        domain.ProductSelection{ASINs: asins, SellerSKUs: skus},
		ThresholdPercent: decimal.NewFromFloat(thresholdPercent),
		Interval:         interval,
	}
}
