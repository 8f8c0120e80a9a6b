package client

import (
	"context"
	"time"
)

// PriceObservation is one observed price as sent by a collector. Amount is a
// decimal string.
type PriceObservation struct {
	ASIN               string    `json:"asin"`
	SellerSKU          string    `json:"seller_sku,omitempty"`
	Amount             string    `json:"amount"`
	Currency           string    `json:"currency,omitempty"`
	Condition          string    `json:"condition,omitempty"`
	FulfillmentChannel string    `json:"fulfillment_channel,omitempty"`
	BelongsToRequester bool      `json:"belongs_to_requester,omitempty"`
	Side               string    `json:"side,omitempty"`
	CapturedAt         time.Time `json:"captured_at"`
}

// RankObservation is one observed sales rank as sent by a collector.
type RankObservation struct {
	ASIN       string    `json:"asin"`
	SellerSKU  string    `json:"seller_sku,omitempty"`
	Rank       int64     `json:"rank"`
	Category   string    `json:"category,omitempty"`
	Side       string    `json:"side,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// IngestResult reports how many observations in a batch were stored.
type IngestResult struct {
	Accepted int `json:"accepted"`
	Failed   int `json:"failed"`
}

// IngestPrices sends a batch of price observations.
func (c *Client) IngestPrices(ctx context.Context, obs []PriceObservation) (*IngestResult, error) {
	var res IngestResult
	body := map[string]any{"observations": obs}
	if err := c.post(ctx, "/api/v1/observations/prices", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// IngestRanks sends a batch of rank observations.
func (c *Client) IngestRanks(ctx context.Context, obs []RankObservation) (*IngestResult, error) {
	var res IngestResult
	body := map[string]any{"observations": obs}
	if err := c.post(ctx, "/api/v1/observations/ranks", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
