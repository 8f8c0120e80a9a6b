package engine

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// ResolveCompetitors returns the competitor ASINs actively mapped to one of
// our seller SKUs. A SKU with no mappings yields an empty slice.
func (eng *Engine) ResolveCompetitors(ctx context.Context, sellerSKU string) ([]string, error) {
	mappings, err := eng.store.ListMappingsBySKU(ctx, sellerSKU)
	if err != nil {
		return nil, fmt.Errorf("resolving competitors for %s: %w", sellerSKU, err)
	}
	return competitorASINs(mappings), nil
}

// ResolveMappings returns the active mappings for one of our ASINs, most
// critical priority first.
func (eng *Engine) ResolveMappings(ctx context.Context, ourASIN string) ([]domain.ProductMapping, error) {
	mappings, err := eng.store.ListMappingsByASIN(ctx, ourASIN)
	if err != nil {
		return nil, fmt.Errorf("resolving mappings for %s: %w", ourASIN, err)
	}
	return activeOnly(mappings), nil
}

// competitorsFor resolves by SKU and falls back to our ASIN when the SKU is
// unknown or unmapped.
func (eng *Engine) competitorsFor(ctx context.Context, asin, sellerSKU string) ([]string, error) {
	if sellerSKU != "" {
		asins, err := eng.ResolveCompetitors(ctx, sellerSKU)
		if err != nil || len(asins) > 0 {
			return asins, err
		}
	}
	if asin == "" {
		return nil, nil
	}

	mappings, err := eng.ResolveMappings(ctx, asin)
	if err != nil {
		return nil, err
	}
	return competitorASINs(mappings), nil
}

func activeOnly(mappings []domain.ProductMapping) []domain.ProductMapping {
	out := make([]domain.ProductMapping, 0, len(mappings))
	for i := range mappings {
		if mappings[i].IsActive {
			out = append(out, mappings[i])
		}
	}
	return out
}

func competitorASINs(mappings []domain.ProductMapping) []string {
	seen := make(map[string]struct{}, len(mappings))
	asins := make([]string, 0, len(mappings))
	for i := range mappings {
		m := &mappings[i]
		if !m.IsActive || m.CompetitorASIN == "" {
			continue
		}
		if _, ok := seen[m.CompetitorASIN]; ok {
			continue
		}
		seen[m.CompetitorASIN] = struct{}{}
		asins = append(asins, m.CompetitorASIN)
	}
	return asins
}
