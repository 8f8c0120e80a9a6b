package engine

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// ComparePrices evaluates every selected product with a known price and
// returns one comparison per product that a mapped competitor undercuts.
// Products whose comparison fails are logged and skipped.
func (eng *Engine) ComparePrices(
	ctx context.Context,
	sel domain.ProductSelection,
) ([]domain.PriceComparison, error) {
	own, err := eng.store.LatestOwnPrices(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("loading own prices: %w", err)
	}

	var out []domain.PriceComparison
	for i := range own {
		cmp, err := eng.comparePrice(ctx, &own[i])
		if err != nil {
			eng.log.Error("price comparison failed", "asin", own[i].ASIN, "error", err)
			continue
		}
		if cmp != nil {
			out = append(out, *cmp)
		}
	}
	return out, nil
}

// comparePrice returns nil when no mapped competitor is strictly cheaper.
func (eng *Engine) comparePrice(
	ctx context.Context,
	own *domain.PriceObservation,
) (*domain.PriceComparison, error) {
	if !own.Amount.IsPositive() {
		return nil, nil
	}

	competitors, err := eng.competitorsFor(ctx, own.ASIN, own.SellerSKU)
	if err != nil {
		return nil, err
	}
	if len(competitors) == 0 {
		return nil, nil
	}

	offers, err := eng.store.ListCompetitorPrices(ctx, competitors)
	if err != nil {
		return nil, fmt.Errorf("loading competitor prices: %w", err)
	}

	lowest, ok := lowestPrice(offers)
	if !ok {
		return nil, nil
	}

	return undercut(own, lowest), nil
}

// lowestPrice returns the cheapest positive offer.
func lowestPrice(offers []domain.PriceObservation) (*domain.PriceObservation, bool) {
	var best *domain.PriceObservation
	for i := range offers {
		o := &offers[i]
		if !o.Amount.IsPositive() {
			continue
		}
		if best == nil || o.Amount.LessThan(best.Amount) {
			best = o
		}
	}
	return best, best != nil
}

// undercut builds the comparison when competitor is strictly below own.
func undercut(own, competitor *domain.PriceObservation) *domain.PriceComparison {
	if !competitor.Amount.LessThan(own.Amount) {
		return nil
	}

	diff := own.Amount.Sub(competitor.Amount)
	currency := own.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	condition := own.Condition
	if condition == "" {
		condition = domain.DefaultCondition
	}

	return &domain.PriceComparison{
		OurASIN:              own.ASIN,
		OurSellerSKU:         own.SellerSKU,
		OurPrice:             own.Amount,
		CompetitorPrice:      competitor.Amount,
		CompetitorASIN:       competitor.ASIN,
		PriceDifference:      diff,
		PercentageDifference: diff.Div(own.Amount).Mul(hundred),
		Currency:             currency,
		Condition:            condition,
	}
}
