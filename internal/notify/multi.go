package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/competitive-price-monitor/internal/metrics"
)

// MultiNotifier delivers every alert to all configured sinks concurrently.
// A send succeeds only when every sink accepts it.
type MultiNotifier struct {
	sinks []Notifier
	log   *slog.Logger
}

// NewMultiNotifier creates a MultiNotifier over sinks.
func NewMultiNotifier(log *slog.Logger, sinks ...Notifier) *MultiNotifier {
	return &MultiNotifier{sinks: sinks, log: log}
}

// Name returns "multi".
func (m *MultiNotifier) Name() string { return "multi" }

// Len returns the number of sinks.
func (m *MultiNotifier) Len() int { return len(m.sinks) }

// SendAlert delivers one alert to every sink.
func (m *MultiNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return m.fanOut(ctx, 1, func(ctx context.Context, n Notifier) error {
		return n.SendAlert(ctx, alert)
	})
}

// SendBatchAlert delivers a batch to every sink.
func (m *MultiNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, title string) error {
	return m.fanOut(ctx, len(alerts), func(ctx context.Context, n Notifier) error {
		return n.SendBatchAlert(ctx, alerts, title)
	})
}

func (m *MultiNotifier) fanOut(
	ctx context.Context,
	count int,
	send func(context.Context, Notifier) error,
) error {
	errs := make([]error, len(m.sinks))

	var g errgroup.Group
	for i, sink := range m.sinks {
		g.Go(func() error {
			if err := send(ctx, sink); err != nil {
				m.log.Error("notification failed", "channel", sink.Name(), "error", err)
				metrics.NotificationFailuresTotal.WithLabelValues(sink.Name()).Inc()
				errs[i] = fmt.Errorf("%s: %w", sink.Name(), err)
				return nil
			}
			metrics.NotificationsSentTotal.WithLabelValues(sink.Name()).Add(float64(count))
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
