package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// PriceHistory returns recorded price points for an ASIN, newest first.
func (c *Client) PriceHistory(ctx context.Context, asin string, days, limit int) ([]domain.Snapshot, error) {
	return c.history(ctx, asin, "prices", days, limit)
}

// RankHistory returns recorded rank points for an ASIN, newest first.
func (c *Client) RankHistory(ctx context.Context, asin string, days, limit int) ([]domain.Snapshot, error) {
	return c.history(ctx, asin, "ranks", days, limit)
}

func (c *Client) history(ctx context.Context, asin, kind string, days, limit int) ([]domain.Snapshot, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	q.Set("limit", strconv.Itoa(limit))

	var points []domain.Snapshot
	path := withQuery("/api/v1/history/"+url.PathEscape(asin)+"/"+kind, q)
	if err := c.get(ctx, path, &points); err != nil {
		return nil, err
	}
	return points, nil
}
