package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily notification quota has been exhausted.
var ErrDailyLimitReached = errors.New("daily notification limit reached")

// RateLimiter controls notification send rate and daily volume.
// It uses a token bucket for per-second rate limiting and a rolling
// 24-hour window for the daily quota. A maxDaily of 0 disables the quota.
type RateLimiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size and daily limit.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until the limiter allows a send, or the context is canceled.
// Returns ErrDailyLimitReached if the daily quota has been exhausted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkDailyReset()

	if r.maxDaily > 0 && r.daily.Load() >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.daily.Load(), r.maxDaily)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.daily.Add(1)
	return nil
}

// DailyCount returns the number of sends in the current window.
func (r *RateLimiter) DailyCount() int64 {
	return r.daily.Load()
}

func (r *RateLimiter) checkDailyReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
	}
}

// RateLimitedNotifier throttles a wrapped Notifier. A batch counts as one send.
type RateLimitedNotifier struct {
	next    Notifier
	limiter *RateLimiter
}

// NewRateLimitedNotifier wraps next with limiter.
func NewRateLimitedNotifier(next Notifier, limiter *RateLimiter) *RateLimitedNotifier {
	return &RateLimitedNotifier{next: next, limiter: limiter}
}

// Name returns the wrapped notifier's name.
func (n *RateLimitedNotifier) Name() string { return n.next.Name() }

// SendAlert waits for the limiter then delegates.
func (n *RateLimitedNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}
	return n.next.SendAlert(ctx, alert)
}

// SendBatchAlert waits for the limiter then delegates.
func (n *RateLimitedNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, title string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}
	return n.next.SendBatchAlert(ctx, alerts, title)
}
