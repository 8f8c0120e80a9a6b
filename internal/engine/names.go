package engine

import (
	"context"
	"errors"

	"github.com/donaldgifford/competitive-price-monitor/internal/store"
)

// NameResolver looks up a human-readable product name. ok is false when the
// source has no name for the product.
type NameResolver func(ctx context.Context, asin, sellerSKU string) (name string, ok bool, err error)

// CatalogNameResolver reads the item name from the product catalog.
func CatalogNameResolver(s store.Store) NameResolver {
	return func(ctx context.Context, asin, _ string) (string, bool, error) {
		p, err := s.GetCatalogProduct(ctx, asin)
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return p.ItemName, p.ItemName != "", nil
	}
}

// OrderMappingNameResolver reads the unified product name from order
// mappings, falling back to the marketplace listing name.
func OrderMappingNameResolver(s store.Store) NameResolver {
	return func(ctx context.Context, asin, sellerSKU string) (string, bool, error) {
		m, err := s.FindOrderMapping(ctx, asin, sellerSKU)
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		if m.UnifiedName != "" {
			return m.UnifiedName, true, nil
		}
		return m.SourceName, m.SourceName != "", nil
	}
}

// resolveName walks the resolver chain and returns the first hit. Resolver
// errors are logged and treated as a miss.
func (eng *Engine) resolveName(ctx context.Context, asin, sellerSKU string) *string {
	for _, r := range eng.resolvers {
		name, ok, err := r(ctx, asin, sellerSKU)
		if err != nil {
			eng.log.Warn("product name lookup failed", "asin", asin, "error", err)
			continue
		}
		if ok {
			return &name
		}
	}
	return nil
}
