package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/donaldgifford/competitive-price-monitor/internal/config"
	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
	"github.com/donaldgifford/competitive-price-monitor/internal/notify"
	"github.com/donaldgifford/competitive-price-monitor/internal/store"
	"github.com/donaldgifford/competitive-price-monitor/internal/telemetry"
	"github.com/donaldgifford/competitive-price-monitor/pkg/logger"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// app holds the dependencies shared by serve, run and cleanup.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	store  *store.PostgresStore
	engine *engine.Engine

	closers  []io.Closer
	shutdown telemetry.ShutdownFunc
}

// newApp loads the config and connects every dependency. Callers must call
// close when done.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, logCloser := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	slog.SetDefault(log)

	a := &app{cfg: cfg, log: log, closers: []io.Closer{logCloser}}

	a.shutdown, err = telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("setting up telemetry: %w", err)
	}

	a.store, err = store.NewPostgresStore(ctx, cfg.Database.DSN(), int32(cfg.Database.PoolSize)) //nolint:gosec // pool size is small
	if err != nil {
		a.close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	log.Info("connected to database", "host", cfg.Database.Host, "name", cfg.Database.Name)

	notifier, err := a.buildNotifier()
	if err != nil {
		a.close()
		return nil, err
	}

	minSeverity, err := domain.ParseSeverity(cfg.Notifications.MinSeverity)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("notifications.min_severity: %w", err)
	}

	a.engine = engine.NewEngine(a.store, notifier,
		engine.WithLogger(log),
		engine.WithConcurrency(cfg.Monitoring.Concurrency),
		engine.WithDedupWindow(cfg.Monitoring.DedupWindow),
		engine.WithEscalationRatio(cfg.Monitoring.EscalationRatio),
		engine.WithCompareThreshold(cfg.Monitoring.CompareThresholdPercent),
		engine.WithMinNotifySeverity(minSeverity),
		engine.WithRetention(engine.RetentionPolicy{
			AlertDays:       cfg.Retention.AlertDays,
			HistoryDays:     cfg.Retention.HistoryDays,
			ObservationDays: cfg.Retention.ObservationDays,
		}),
	)

	return a, nil
}

// runConfig returns the default monitoring run built from the config.
func (a *app) runConfig() domain.RunConfig {
	m := a.cfg.Monitoring
	return engine.RunConfigFor(m.ASINs, m.SellerSKUs, m.ThresholdPercent, a.cfg.Schedule.MonitoringInterval)
}

// buildNotifier assembles the enabled sinks, each behind its own rate
// limiter. With no sink enabled, alerts are only logged.
func (a *app) buildNotifier() (notify.Notifier, error) {
	n := a.cfg.Notifications
	var sinks []notify.Notifier

	if n.Discord.Enabled {
		sinks = append(sinks, notify.NewDiscordNotifier(n.Discord.WebhookURL))
	}

	if n.Telegram.Enabled {
		tg, err := notify.NewTelegramNotifier(n.Telegram.Token, n.Telegram.ChatID)
		if err != nil {
			return nil, fmt.Errorf("creating telegram notifier: %w", err)
		}
		sinks = append(sinks, tg)
	}

	if n.Kafka.Enabled {
		k := notify.NewKafkaNotifier(n.Kafka.Brokers, n.Kafka.Topic)
		a.closers = append(a.closers, k)
		sinks = append(sinks, k)
	}

	if len(sinks) == 0 {
		a.log.Warn("no notification sinks enabled, alerts will only be written to the log")
		return notify.NewLogNotifier(a.log), nil
	}

	limited := make([]notify.Notifier, 0, len(sinks))
	for _, s := range sinks {
		limiter := notify.NewRateLimiter(n.RateLimit.PerSecond, n.RateLimit.Burst, n.RateLimit.DailyLimit)
		limited = append(limited, notify.NewRateLimitedNotifier(s, limiter))
		a.log.Info("notification sink enabled", "sink", s.Name())
	}

	return notify.NewMultiNotifier(a.log, limited...), nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.shutdown(ctx); err != nil {
			a.log.Warn("flushing telemetry", "error", err)
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("closing resource", "error", err)
		}
	}
}
