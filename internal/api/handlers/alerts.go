package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// AlertsProvider defines the engine operations required by the alerts handler.
type AlertsProvider interface {
	ListAlerts(ctx context.Context, filter domain.AlertFilter, limit, offset int) (*domain.AlertPage, error)
	CreatePriceAlert(ctx context.Context, in engine.GenericAlertInput) (*domain.Alert, error)
	MarkRead(ctx context.Context, id string) (*domain.Alert, error)
	MarkAllRead(ctx context.Context) (int, error)
	Dismiss(ctx context.Context, id string) (*domain.Alert, error)
	DismissMany(ctx context.Context, ids []string) (int, error)
	Statistics(ctx context.Context, days int) (*domain.AlertStatistics, error)
	RankingIssues(ctx context.Context, limit int) ([]domain.Alert, error)
}

// AlertsHandler handles alert listing and lifecycle requests.
type AlertsHandler struct {
	alerts AlertsProvider
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(p AlertsProvider) *AlertsHandler {
	return &AlertsHandler{alerts: p}
}

// ListAlertsInput holds the query parameters for listing alerts.
type ListAlertsInput struct {
	Filter string `query:"filter" default:"all" enum:"all,unread,high_priority,rank_alerts,price_alerts" doc:"Alert category"`
	Limit  int    `query:"limit"  default:"50"  minimum:"1" maximum:"500" doc:"Page size"`
	Offset int    `query:"offset" default:"0"   minimum:"0" doc:"Rows to skip"`
}

// ListAlertsOutput is the response body for listing alerts.
type ListAlertsOutput struct {
	Body *domain.AlertPage
}

// CreateAlertInput is the request body for a generic price or rank movement alert.
type CreateAlertInput struct {
	Body struct {
		ASIN             string `json:"asin"                        minLength:"1" doc:"Product ASIN"`
		SellerSKU        string `json:"seller_sku,omitempty"        doc:"Our seller SKU"`
		ProductName      string `json:"product_name,omitempty"      doc:"Display name; resolved from the catalog when empty"`
		OldValue         string `json:"old_value"                   example:"24.99" doc:"Previous price or rank"`
		NewValue         string `json:"new_value"                   example:"19.99" doc:"Current price or rank"`
		Currency         string `json:"currency,omitempty"          example:"USD" doc:"Currency code, or RANK for rank movements"`
		CompetitorName   string `json:"competitor_name,omitempty"   doc:"Competitor label"`
		ThresholdPercent string `json:"threshold_percent,omitempty" example:"10" doc:"Threshold that triggered the alert"`
	}
}

// AlertOutput is the response body for a single alert.
type AlertOutput struct {
	Body *domain.Alert
}

// AlertIDInput is the request path for single-alert operations.
type AlertIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Alert ID"`
}

// AlertResultOutput reports a lifecycle transition on one alert.
type AlertResultOutput struct {
	Body struct {
		ResultBody
		Alert *domain.Alert `json:"alert,omitempty"`
	}
}

// DismissManyInput is the request body for bulk dismissal.
type DismissManyInput struct {
	Body struct {
		IDs []string `json:"ids" minItems:"1" doc:"Alert IDs to dismiss"`
	}
}

// CountResultOutput reports a bulk lifecycle transition.
type CountResultOutput struct {
	Body struct {
		ResultBody
		Count int `json:"count" doc:"Number of alerts updated"`
	}
}

// StatisticsInput holds the query parameters for alert statistics.
type StatisticsInput struct {
	Days int `query:"days" default:"30" minimum:"1" maximum:"365" doc:"Window in days"`
}

// StatisticsOutput is the response body for alert statistics.
type StatisticsOutput struct {
	Body *domain.AlertStatistics
}

// RankingIssuesInput holds the query parameters for ranking issues.
type RankingIssuesInput struct {
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"200" doc:"Maximum alerts to return"`
}

// AlertsListOutput is a bare list of alerts.
type AlertsListOutput struct {
	Body []domain.Alert
}

// ListAlerts returns one page of alerts and the per-category counts.
func (h *AlertsHandler) ListAlerts(ctx context.Context, input *ListAlertsInput) (*ListAlertsOutput, error) {
	page, err := h.alerts.ListAlerts(ctx, domain.AlertFilter(input.Filter), input.Limit, input.Offset)
	if err != nil {
		return nil, toHTTPError("listing alerts", err)
	}
	return &ListAlertsOutput{Body: page}, nil
}

// CreateAlert classifies and stores a generic movement alert.
func (h *AlertsHandler) CreateAlert(ctx context.Context, input *CreateAlertInput) (*AlertOutput, error) {
	b := input.Body
	oldValue, err := parseDecimal("old_value", b.OldValue)
	if err != nil {
		return nil, err
	}
	newValue, err := parseDecimal("new_value", b.NewValue)
	if err != nil {
		return nil, err
	}
	threshold := decimal.Zero
	if b.ThresholdPercent != "" {
		if threshold, err = parseDecimal("threshold_percent", b.ThresholdPercent); err != nil {
			return nil, err
		}
	}

	a, err := h.alerts.CreatePriceAlert(ctx, engine.GenericAlertInput{
		ASIN:             b.ASIN,
		SellerSKU:        b.SellerSKU,
		ProductName:      b.ProductName,
		OldValue:         oldValue,
		NewValue:         newValue,
		Currency:         b.Currency,
		CompetitorName:   b.CompetitorName,
		ThresholdPercent: threshold,
	})
	if err != nil {
		return nil, toHTTPError("creating alert", err)
	}
	return &AlertOutput{Body: a}, nil
}

// MarkRead marks one alert as read.
func (h *AlertsHandler) MarkRead(ctx context.Context, input *AlertIDInput) (*AlertResultOutput, error) {
	a, err := h.alerts.MarkRead(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError("marking alert read", err)
	}
	resp := &AlertResultOutput{}
	resp.Body.Success = true
	resp.Body.Message = "alert marked as read"
	resp.Body.Alert = a
	return resp, nil
}

// MarkAllRead marks every unread, non-dismissed alert as read.
func (h *AlertsHandler) MarkAllRead(ctx context.Context, _ *struct{}) (*CountResultOutput, error) {
	n, err := h.alerts.MarkAllRead(ctx)
	if err != nil {
		return nil, toHTTPError("marking alerts read", err)
	}
	return countResult(n, fmt.Sprintf("%d alerts marked as read", n)), nil
}

// Dismiss dismisses one alert.
func (h *AlertsHandler) Dismiss(ctx context.Context, input *AlertIDInput) (*AlertResultOutput, error) {
	a, err := h.alerts.Dismiss(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError("dismissing alert", err)
	}
	resp := &AlertResultOutput{}
	resp.Body.Success = true
	resp.Body.Message = "alert dismissed"
	resp.Body.Alert = a
	return resp, nil
}

// DismissMany dismisses a set of alerts.
func (h *AlertsHandler) DismissMany(ctx context.Context, input *DismissManyInput) (*CountResultOutput, error) {
	n, err := h.alerts.DismissMany(ctx, input.Body.IDs)
	if err != nil {
		return nil, toHTTPError("dismissing alerts", err)
	}
	return countResult(n, fmt.Sprintf("%d alerts dismissed", n)), nil
}

// Statistics aggregates alerts over a trailing window.
func (h *AlertsHandler) Statistics(ctx context.Context, input *StatisticsInput) (*StatisticsOutput, error) {
	stats, err := h.alerts.Statistics(ctx, input.Days)
	if err != nil {
		return nil, toHTTPError("alert statistics", err)
	}
	return &StatisticsOutput{Body: stats}, nil
}

// RankingIssues returns unread rank alerts, newest first.
func (h *AlertsHandler) RankingIssues(ctx context.Context, input *RankingIssuesInput) (*AlertsListOutput, error) {
	alerts, err := h.alerts.RankingIssues(ctx, input.Limit)
	if err != nil {
		return nil, toHTTPError("listing ranking issues", err)
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	return &AlertsListOutput{Body: alerts}, nil
}

func countResult(n int, msg string) *CountResultOutput {
	resp := &CountResultOutput{}
	resp.Body.Success = true
	resp.Body.Message = msg
	resp.Body.Count = n
	return resp
}

func parseDecimal(field, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, huma.Error400BadRequest(field + " must be a decimal number")
	}
	return d, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List alerts",
		Description: "Returns non-dismissed alerts ordered by severity then creation time, " +
			"with counts for every filter category.",
		Tags:   []string{"alerts"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.ListAlerts)

	huma.Register(api, huma.Operation{
		OperationID:   "create-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/alerts",
		Summary:       "Create a movement alert",
		Description:   "Classifies a price or rank movement and stores it as an alert.",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.CreateAlert)

	huma.Register(api, huma.Operation{
		OperationID: "read-all-alerts",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/read-all",
		Summary:     "Mark all alerts read",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.MarkAllRead)

	huma.Register(api, huma.Operation{
		OperationID: "dismiss-alerts",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/dismiss",
		Summary:     "Dismiss alerts",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.DismissMany)

	huma.Register(api, huma.Operation{
		OperationID: "alert-statistics",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/statistics",
		Summary:     "Alert statistics",
		Description: "Totals, type and severity breakdowns, and a 7-day trend.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Statistics)

	huma.Register(api, huma.Operation{
		OperationID: "ranking-issues",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/ranking-issues",
		Summary:     "List ranking issues",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.RankingIssues)

	huma.Register(api, huma.Operation{
		OperationID: "read-alert",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/read",
		Summary:     "Mark an alert read",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.MarkRead)

	huma.Register(api, huma.Operation{
		OperationID: "dismiss-alert",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/dismiss",
		Summary:     "Dismiss an alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.Dismiss)
}
