package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/competitive-price-monitor/internal/notify"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const (
	batchThreshold = 5
	batchTitle     = "monitoring run"
)

// DispatchNotifications sends un-notified alerts at or above the minimum
// severity, then marks them as notified. Five or more pending alerts are sent
// as one batch. Alerts whose delivery fails are left pending for the next
// dispatch. It returns how many alerts were marked notified.
func (eng *Engine) DispatchNotifications(ctx context.Context) (int, error) {
	pending, err := eng.store.ListPendingAlerts(ctx, eng.minSeverity)
	if err != nil {
		return 0, fmt.Errorf("listing pending alerts: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	if len(pending) >= batchThreshold {
		return eng.sendBatch(ctx, pending)
	}

	sent := make([]string, 0, len(pending))
	for i := range pending {
		payload := notify.NewAlertPayload(&pending[i])
		if err := eng.notifier.SendAlert(ctx, &payload); err != nil {
			eng.log.ErrorContext(ctx, "sending alert notification",
				"alert_id", pending[i].ID,
				"asin", pending[i].ASIN,
				"error", err,
			)
			continue
		}
		sent = append(sent, pending[i].ID)
	}

	return eng.markNotified(ctx, sent)
}

func (eng *Engine) sendBatch(ctx context.Context, alerts []domain.Alert) (int, error) {
	payloads := make([]notify.AlertPayload, 0, len(alerts))
	ids := make([]string, 0, len(alerts))
	for i := range alerts {
		payloads = append(payloads, notify.NewAlertPayload(&alerts[i]))
		ids = append(ids, alerts[i].ID)
	}

	if err := eng.notifier.SendBatchAlert(ctx, payloads, batchTitle); err != nil {
		return 0, fmt.Errorf("sending batch alert: %w", err)
	}

	return eng.markNotified(ctx, ids)
}

func (eng *Engine) markNotified(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if err := eng.store.MarkAlertsNotified(ctx, ids); err != nil {
		return 0, fmt.Errorf("marking alerts notified: %w", err)
	}
	eng.log.InfoContext(ctx, "alerts notified", "count", len(ids), "channel", eng.notifier.Name())
	return len(ids), nil
}
