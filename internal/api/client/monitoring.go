package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// RunRequest narrows a monitoring run. Zero values use the server defaults.
type RunRequest struct {
	ASINs            []string `json:"asins,omitempty"`
	SellerSKUs       []string `json:"seller_skus,omitempty"`
	ThresholdPercent *float64 `json:"threshold_percent,omitempty"`
}

// CleanupResponse reports the outcome of a retention sweep.
type CleanupResponse struct {
	Steps        []domain.CleanupStep `json:"steps"`
	TotalDeleted int64                `json:"total_deleted"`
	Success      bool                 `json:"success"`
}

// RunMonitoring triggers one monitoring cycle.
func (c *Client) RunMonitoring(ctx context.Context, req RunRequest) (*domain.RunResult, error) {
	var res domain.RunResult
	if err := c.post(ctx, "/api/v1/monitoring/run", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Cleanup triggers the retention sweep. Zero ages use the server policy.
func (c *Client) Cleanup(ctx context.Context, alertDays, historyDays int) (*CleanupResponse, error) {
	q := url.Values{}
	q.Set("alert_days", strconv.Itoa(alertDays))
	q.Set("history_days", strconv.Itoa(historyDays))

	var res CleanupResponse
	if err := c.post(ctx, withQuery("/api/v1/monitoring/cleanup", q), struct{}{}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// InitializeMonitoring records baseline snapshots for asins, or for every
// ASIN without a snapshot when asins is empty.
func (c *Client) InitializeMonitoring(ctx context.Context, asins []string) (*domain.InitializeResult, error) {
	body := map[string][]string{}
	if len(asins) > 0 {
		body["asins"] = asins
	}

	var res domain.InitializeResult
	if err := c.post(ctx, "/api/v1/monitoring/initialize", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MonitoringStats returns monitoring statistics.
func (c *Client) MonitoringStats(ctx context.Context) (*domain.MonitoringStats, error) {
	var stats domain.MonitoringStats
	if err := c.get(ctx, "/api/v1/monitoring/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CompetitiveOverview returns the competitive overview.
func (c *Client) CompetitiveOverview(ctx context.Context) (*domain.CompetitiveOverview, error) {
	var overview domain.CompetitiveOverview
	if err := c.get(ctx, "/api/v1/monitoring/overview", &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
