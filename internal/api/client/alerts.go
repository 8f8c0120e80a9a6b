package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// Result is the outcome of an alert lifecycle operation.
type Result struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Count   int           `json:"count,omitempty"`
	Alert   *domain.Alert `json:"alert,omitempty"`
}

// ListAlerts returns one page of alerts with per-category counts.
func (c *Client) ListAlerts(ctx context.Context, filter string, limit, offset int) (*domain.AlertPage, error) {
	q := url.Values{}
	q.Set("filter", filter)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var page domain.AlertPage
	if err := c.get(ctx, withQuery("/api/v1/alerts", q), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MarkAlertRead marks one alert as read.
func (c *Client) MarkAlertRead(ctx context.Context, id string) (*Result, error) {
	return c.lifecycle(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/read", struct{}{})
}

// MarkAllAlertsRead marks every unread alert as read.
func (c *Client) MarkAllAlertsRead(ctx context.Context) (*Result, error) {
	return c.lifecycle(ctx, "/api/v1/alerts/read-all", struct{}{})
}

// DismissAlert dismisses one alert.
func (c *Client) DismissAlert(ctx context.Context, id string) (*Result, error) {
	return c.lifecycle(ctx, "/api/v1/alerts/"+url.PathEscape(id)+"/dismiss", struct{}{})
}

// DismissAlerts dismisses several alerts at once.
func (c *Client) DismissAlerts(ctx context.Context, ids []string) (*Result, error) {
	return c.lifecycle(ctx, "/api/v1/alerts/dismiss", map[string][]string{"ids": ids})
}

func (c *Client) lifecycle(ctx context.Context, path string, body any) (*Result, error) {
	var res Result
	if err := c.post(ctx, path, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AlertStatistics returns alert aggregates over the trailing window.
func (c *Client) AlertStatistics(ctx context.Context, days int) (*domain.AlertStatistics, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))

	var stats domain.AlertStatistics
	if err := c.get(ctx, withQuery("/api/v1/alerts/statistics", q), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RankingIssues returns unread rank alerts, newest first.
func (c *Client) RankingIssues(ctx context.Context, limit int) ([]domain.Alert, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var alerts []domain.Alert
	if err := c.get(ctx, withQuery("/api/v1/alerts/ranking-issues", q), &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
