package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// rankUnit is one of our ASINs with every positive rank observed for it.
type rankUnit struct {
	asin      string
	sellerSKU string
	ranks     []int64
}

func groupOwnRanks(obs []domain.RankObservation) []rankUnit {
	index := make(map[string]int)
	var units []rankUnit
	for i := range obs {
		o := &obs[i]
		if o.Rank <= 0 || o.ASIN == "" {
			continue
		}
		idx, ok := index[o.ASIN]
		if !ok {
			idx = len(units)
			index[o.ASIN] = idx
			units = append(units, rankUnit{asin: o.ASIN, sellerSKU: o.SellerSKU})
		}
		if units[idx].sellerSKU == "" {
			units[idx].sellerSKU = o.SellerSKU
		}
		units[idx].ranks = append(units[idx].ranks, o.Rank)
	}
	return units
}

// CompareRanks evaluates every selected product with known ranks and returns
// one comparison per product that a mapped competitor outranks. Products
// already holding a recent rank alert are skipped before any competitor
// lookup.
func (eng *Engine) CompareRanks(
	ctx context.Context,
	sel domain.ProductSelection,
) ([]domain.RankComparison, error) {
	own, err := eng.store.ListOwnRanks(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("loading own ranks: %w", err)
	}

	var out []domain.RankComparison
	for _, u := range groupOwnRanks(own) {
		cmp, err := eng.compareRank(ctx, u)
		if err != nil {
			eng.log.Error("rank comparison failed", "asin", u.asin, "error", err)
			continue
		}
		if cmp != nil {
			out = append(out, *cmp)
		}
	}
	return out, nil
}

// compareRank returns nil when the product is in cool-down, unmapped, or
// not outranked.
func (eng *Engine) compareRank(ctx context.Context, u rankUnit) (*domain.RankComparison, error) {
	if len(u.ranks) == 0 {
		return nil, nil
	}

	since, _ := eng.dedupSlot()
	recent, err := eng.store.HasRecentAlert(ctx, u.asin, domain.AlertRankComparison, since)
	if err != nil {
		return nil, fmt.Errorf("checking recent rank alert: %w", err)
	}
	if recent {
		eng.log.Debug("rank alert cool-down active", "asin", u.asin)
		return nil, nil
	}

	competitors, err := eng.competitorsFor(ctx, u.asin, u.sellerSKU)
	if err != nil {
		return nil, err
	}
	if len(competitors) == 0 {
		return nil, nil
	}

	obs, err := eng.store.ListCompetitorRanks(ctx, competitors)
	if err != nil {
		return nil, fmt.Errorf("loading competitor ranks: %w", err)
	}

	return outranked(u, bestRanks(obs), eng.escalationRatio), nil
}

// bestRanks returns each competitor's best (lowest) positive rank.
func bestRanks(obs []domain.RankObservation) map[string]int64 {
	best := make(map[string]int64)
	for i := range obs {
		o := &obs[i]
		if o.Rank <= 0 {
			continue
		}
		if cur, ok := best[o.ASIN]; !ok || o.Rank < cur {
			best[o.ASIN] = o.Rank
		}
	}
	return best
}

// outranked builds the comparison when the best competitor rank is strictly
// better than our best rank. Severity is escalated one tier when at least
// ratio of the considered competitors rank ahead of our worst rank.
func outranked(u rankUnit, competitors map[string]int64, ratio decimal.Decimal) *domain.RankComparison {
	if len(u.ranks) == 0 || len(competitors) == 0 {
		return nil
	}

	ourBest := slices.Min(u.ranks)
	ourWorst := slices.Max(u.ranks)

	asins := make([]string, 0, len(competitors))
	for asin := range competitors {
		asins = append(asins, asin)
	}
	slices.Sort(asins)

	var (
		bestASIN string
		compBest int64
		ahead    int
	)
	for _, asin := range asins {
		r := competitors[asin]
		if bestASIN == "" || r < compBest {
			bestASIN, compBest = asin, r
		}
		if r < ourWorst {
			ahead++
		}
	}

	if compBest >= ourBest {
		return nil
	}

	diff := ourBest - compBest
	pct := decimal.NewFromInt(diff).Div(decimal.NewFromInt(ourBest)).Mul(hundred)
	considered := len(competitors)

	severity := RankSeverity(pct, diff)
	escalated := decimal.NewFromInt(int64(ahead)).
		GreaterThanOrEqual(ratio.Mul(decimal.NewFromInt(int64(considered))))
	if escalated {
		severity = severity.Escalate()
	}

	return &domain.RankComparison{
		OurASIN:               u.asin,
		OurSellerSKU:          u.sellerSKU,
		OurBestRank:           ourBest,
		OurWorstRank:          ourWorst,
		CompetitorBestRank:    compBest,
		BestCompetitorASIN:    bestASIN,
		RankDifference:        diff,
		PercentageDifference:  pct,
		CompetitorsAhead:      ahead,
		CompetitorsConsidered: considered,
		Severity:              severity,
		Escalated:             escalated,
	}
}
