package notify

import (
	"context"
	"log/slog"
)

// LogNotifier delivers alerts to the application log. It stands in when no
// sink is configured, so alerts still leave a trace outside the database.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that writes alerts to log.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Name returns "log".
func (n *LogNotifier) Name() string { return "log" }

// SendAlert logs one alert at INFO, or WARN for critical alerts.
func (n *LogNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	level := slog.LevelInfo
	if alert.Priority == "critical" {
		level = slog.LevelWarn
	}
	n.log.LogAttrs(ctx, level, "competitive alert", alertAttrs(alert)...)
	return nil
}

// SendBatchAlert logs a summary line followed by one line per alert.
func (n *LogNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, title string) error {
	n.log.InfoContext(ctx, "competitive alert batch", "title", title, "count", len(alerts))
	for i := range alerts {
		n.log.LogAttrs(ctx, slog.LevelInfo, "competitive alert", alertAttrs(&alerts[i])...)
	}
	return nil
}

func alertAttrs(a *AlertPayload) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("alert_id", a.AlertID),
		slog.String("asin", a.ASIN),
		slog.String("type", a.AlertType),
		slog.String("priority", a.Priority),
		slog.String("old", a.OldValue),
		slog.String("new", a.NewValue),
		slog.String("change", a.ChangePercent),
	}
	if a.Competitor != "" {
		attrs = append(attrs, slog.String("competitor", a.Competitor))
	}
	return attrs
}
