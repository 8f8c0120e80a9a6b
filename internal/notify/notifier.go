// Package notify defines the notification interface and implementations
// for alert delivery.
package notify

import (
	"context"
	"time"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// AlertPayload contains the data needed to send a competitive alert notification.
type AlertPayload struct {
	AlertID       string    `json:"alert_id"`
	ASIN          string    `json:"asin"`
	SellerSKU     string    `json:"seller_sku,omitempty"`
	ProductName   string    `json:"product_name"`
	AlertType     string    `json:"alert_type"`
	Priority      string    `json:"priority"`
	OldValue      string    `json:"old_value"`
	NewValue      string    `json:"new_value"`
	ChangePercent string    `json:"change_percent"`
	Currency      string    `json:"currency"`
	Competitor    string    `json:"competitor,omitempty"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsRank reports whether the payload describes a sales-rank alert.
func (p *AlertPayload) IsRank() bool {
	return p.Currency == domain.CurrencyRank
}

// NewAlertPayload formats a persisted alert for delivery.
func NewAlertPayload(a *domain.Alert) AlertPayload {
	oldValue := a.OldValue.StringFixed(2)
	newValue := a.NewValue.StringFixed(2)
	if a.IsRank() {
		oldValue = "#" + a.OldValue.StringFixed(0)
		newValue = "#" + a.NewValue.StringFixed(0)
	}

	return AlertPayload{
		AlertID:       a.ID,
		ASIN:          a.ASIN,
		SellerSKU:     a.SellerSKU,
		ProductName:   a.DisplayName(),
		AlertType:     string(a.AlertType),
		Priority:      string(a.Priority),
		OldValue:      oldValue,
		NewValue:      newValue,
		ChangePercent: a.ChangePercent.StringFixed(1) + "%",
		Currency:      a.Currency,
		Competitor:    a.CompetitorName,
		Message:       a.Message,
		CreatedAt:     a.CreatedAt,
	}
}

// Notifier defines the interface for sending alert notifications.
type Notifier interface {
	// Name identifies the delivery channel in logs and metrics.
	Name() string
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, title string) error
}
