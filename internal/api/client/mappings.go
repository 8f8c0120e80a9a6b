package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// MappingRequest creates or updates a competitor mapping.
type MappingRequest struct {
	OurSellerSKU   string `json:"our_seller_sku"`
	OurASIN        string `json:"our_asin,omitempty"`
	CompetitorASIN string `json:"competitor_asin"`
	Priority       int    `json:"priority,omitempty"`
	IsActive       *bool  `json:"is_active,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// ListMappings returns the active mappings for a seller SKU or, when sku is
// empty, for one of our ASINs.
func (c *Client) ListMappings(ctx context.Context, sku, asin string) ([]domain.ProductMapping, error) {
	q := url.Values{}
	q.Set("sku", sku)
	q.Set("asin", asin)

	var mappings []domain.ProductMapping
	if err := c.get(ctx, withQuery("/api/v1/mappings", q), &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// SaveMapping creates or updates a competitor mapping.
func (c *Client) SaveMapping(ctx context.Context, req MappingRequest) (*domain.ProductMapping, error) {
	var m domain.ProductMapping
	if err := c.put(ctx, "/api/v1/mappings", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
