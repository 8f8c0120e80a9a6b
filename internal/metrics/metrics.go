// Package metrics defines Prometheus metrics for competitive-price-monitor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cpm"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Number of API requests currently being served.",
	})

	HTTPPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of handler panics recovered by the server.",
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness check succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness check succeeded, 0 otherwise.",
	})
)

// Monitoring cycle metrics.
var (
	MonitoringCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "monitoring_cycle_duration_seconds",
		Help:      "Duration of monitoring cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ProductsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_processed_total",
		Help:      "Total number of product units processed by monitoring cycles.",
	})

	ProductFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_failures_total",
		Help:      "Total number of product units whose comparison failed.",
	})

	ComparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comparisons_total",
		Help:      "Total number of competitor comparisons computed, by kind.",
	}, []string{"kind"})

	ObservationsIngestedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "observations_ingested_total",
		Help:      "Total number of price and rank observations accepted, by kind and side.",
	}, []string{"kind", "side"})
)

// Alert metrics.
var (
	AlertsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_created_total",
		Help:      "Total number of alerts created, by type and priority.",
	}, []string{"type", "priority"})

	AlertsDeduplicatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_deduplicated_total",
		Help:      "Total number of alerts suppressed by the deduplication window.",
	})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of alert notifications delivered, by channel.",
	}, []string{"channel"})

	NotificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures, by channel.",
	}, []string{"channel"})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification sends in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Retention metrics.
var (
	RetentionDeletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retention_deleted_total",
		Help:      "Total number of rows removed by retention cleanup, by store.",
	}, []string{"store"})

	RetentionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retention_failures_total",
		Help:      "Total number of failed retention steps, by store.",
	}, []string{"store"})
)

// Scheduler metrics.
var (
	SchedulerNextMonitoringTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_monitoring_timestamp",
		Help:      "Unix timestamp of the next scheduled monitoring run.",
	})

	SchedulerNextCleanupTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_cleanup_timestamp",
		Help:      "Unix timestamp of the next scheduled retention cleanup.",
	})

	SchedulerNextNotifyTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_notify_timestamp",
		Help:      "Unix timestamp of the next scheduled notification dispatch.",
	})

	SchedulerJobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_job_runs_total",
		Help:      "Total number of scheduled job runs, by job and status.",
	}, []string{"job_name", "status"})
)
