// Package engine implements competitive price and rank monitoring: mapping
// resolution, undercut and outrank comparison, alert decisions with
// deduplication, alert lifecycle, snapshots, retention and scheduling.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/competitive-price-monitor/internal/notify"
	"github.com/donaldgifford/competitive-price-monitor/internal/store"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const instrumentationName = "github.com/donaldgifford/competitive-price-monitor/internal/engine"

const (
	defaultConcurrency = 8
	defaultDedupWindow = 24 * time.Hour
)

// ErrInvalidInput is returned when a caller supplies malformed arguments.
var ErrInvalidInput = errors.New("invalid input")

var (
	defaultEscalationRatio  = decimal.RequireFromString("0.7")
	defaultCompareThreshold = decimal.NewFromInt(10)
	hundred                 = decimal.NewFromInt(100)
)

// Engine orchestrates comparison, alerting, snapshots and retention.
type Engine struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time

	concurrency      int
	dedupWindow      time.Duration
	escalationRatio  decimal.Decimal
	compareThreshold decimal.Decimal
	minSeverity      domain.Severity
	retention        RetentionPolicy
	resolvers        []NameResolver

	alertCounter metric.Int64Counter
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, n notify.Notifier, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:            s,
		notifier:         n,
		log:              slog.Default(),
		tracer:           otel.Tracer(instrumentationName),
		now:              time.Now,
		concurrency:      defaultConcurrency,
		dedupWindow:      defaultDedupWindow,
		escalationRatio:  defaultEscalationRatio,
		compareThreshold: defaultCompareThreshold,
		minSeverity:      domain.SeverityHigh,
		retention:        DefaultRetentionPolicy(),
		resolvers: []NameResolver{
			CatalogNameResolver(s),
			OrderMappingNameResolver(s),
		},
	}
	for _, opt := range opts {
		opt(eng)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"cpm.alerts.created",
		metric.WithDescription("Alerts persisted by the decision engine."),
	)
	if err != nil {
		eng.log.Warn("creating otel alert counter", "error", err)
		counter = noop.Int64Counter{}
	}
	eng.alertCounter = counter

	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithConcurrency sets how many product units a monitoring cycle evaluates at once.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithDedupWindow sets the trailing window during which a repeat alert of
// the same type for the same product is suppressed.
func WithDedupWindow(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.dedupWindow = d
		}
	}
}

// WithEscalationRatio sets the share of competitors ahead that bumps rank
// alert severity one tier.
func WithEscalationRatio(r float64) EngineOption {
	return func(e *Engine) {
		if r > 0 {
			e.escalationRatio = decimal.NewFromFloat(r)
		}
	}
}

// WithCompareThreshold sets the default threshold for CompareAndAlert.
func WithCompareThreshold(pct float64) EngineOption {
	return func(e *Engine) {
		e.compareThreshold = decimal.NewFromFloat(pct)
	}
}

// WithMinNotifySeverity sets the lowest severity dispatched to notifiers.
func WithMinNotifySeverity(s domain.Severity) EngineOption {
	return func(e *Engine) {
		if s.Rank() > 0 {
			e.minSeverity = s
		}
	}
}

// WithRetention sets the retention ages used by Cleanup.
func WithRetention(p RetentionPolicy) EngineOption {
	return func(e *Engine) {
		e.retention = p.withDefaults()
	}
}

// WithNameResolvers replaces the product display name fallback chain.
func WithNameResolvers(r ...NameResolver) EngineOption {
	return func(e *Engine) {
		e.resolvers = r
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}
