package main

import "errors"

// KnownMetrics is the set of metric names exported by competitive-price-monitor
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"cpm_http_request_duration_seconds": true,
	"cpm_http_requests_total":           true,
	"cpm_http_requests_in_flight":       true,
	"cpm_http_panics_total":             true,

	// Health metrics.
	"cpm_healthz_up": true,
	"cpm_readyz_up":  true,

	// Monitoring metrics.
	"cpm_monitoring_cycle_duration_seconds": true,
	"cpm_products_processed_total":          true,
	"cpm_product_failures_total":            true,
	"cpm_comparisons_total":                 true,
	"cpm_observations_ingested_total":       true,

	// Alert and notification metrics.
	"cpm_alerts_created_total":          true,
	"cpm_alerts_deduplicated_total":     true,
	"cpm_notifications_sent_total":      true,
	"cpm_notification_failures_total":   true,
	"cpm_notification_duration_seconds": true,

	// Retention metrics.
	"cpm_retention_deleted_total":  true,
	"cpm_retention_failures_total": true,

	// Scheduler metrics.
	"cpm_scheduler_next_monitoring_timestamp": true,
	"cpm_scheduler_next_cleanup_timestamp":    true,
	"cpm_scheduler_next_notify_timestamp":     true,
	"cpm_scheduler_job_runs_total":            true,

	// Recording rules.
	"cpm:http_requests:rate5m":         true,
	"cpm:http_errors:rate5m":           true,
	"cpm:products_processed:rate5m":    true,
	"cpm:product_failures:rate5m":      true,
	"cpm:alerts_created:rate5m":        true,
	"cpm:notification_failures:rate5m": true,
	"cpm:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
