package rules

// DashboardUID is linked from every alert so on-call lands on the overview.
const DashboardUID = "cpm-overview"

type alertDef struct {
	name        string
	expr        string
	forDur      string
	severity    string
	summary     string
	description string
}

var alertDefs = []alertDef{
	{
		name:        "CpmDown",
		expr:        `absent(up{job="competitive-price-monitor"})`,
		forDur:      "2m",
		severity:    "critical",
		summary:     "Competitive Price Monitor is down",
		description: "The competitive-price-monitor job has been absent for more than 2 minutes.",
	},
	{
		name:        "CpmReadinessDown",
		expr:        `cpm_readyz_up == 0`,
		forDur:      "2m",
		severity:    "critical",
		summary:     "Competitive Price Monitor cannot reach its database",
		description: "The readiness check, which pings PostgreSQL, has failed for more than 2 minutes.",
	},
	{
		name:        "CpmHighErrorRate",
		expr:        `cpm:http_errors:rate5m / cpm:http_requests:rate5m > 0.05`,
		forDur:      "5m",
		severity:    "warning",
		summary:     "High API error rate",
		description: "More than 5% of API requests returned 5xx over the last 5 minutes.",
	},
	{
		name:        "CpmProductFailures",
		expr:        `cpm:product_failures:rate5m / cpm:products_processed:rate5m > 0.2`,
		forDur:      "15m",
		severity:    "warning",
		summary:     "Many product comparisons are failing",
		description: "More than 20% of product units failed comparison over the last 15 minutes.",
	},
	{
		name:        "CpmMonitoringStalled",
		expr:        `increase(cpm_scheduler_job_runs_total{job_name="monitoring", status="succeeded"}[3h]) == 0`,
		forDur:      "10m",
		severity:    "warning",
		summary:     "No successful monitoring run in 3 hours",
		description: "The scheduler has not completed a monitoring cycle in 3 hours; competitor undercuts are not being detected.",
	},
	{
		name:        "CpmRetentionFailures",
		expr:        `sum by (store) (increase(cpm_retention_failures_total[1d])) > 0`,
		severity:    "warning",
		summary:     "Retention cleanup failed for {{ $labels.store }}",
		description: "The retention sweep could not prune {{ $labels.store }} in the last day.",
	},
	{
		name:        "CpmNotificationFailures",
		expr:        `sum by (channel) (cpm:notification_failures:rate5m) > 0`,
		forDur:      "5m",
		severity:    "warning",
		summary:     "{{ $labels.channel }} notifications are failing",
		description: "Alert deliveries to {{ $labels.channel }} have been failing for 5 minutes.",
	},
}

// AlertRules returns the operational alerts for the service.
func AlertRules() PrometheusRule {
	group := RuleGroup{Name: "cpm-alerts"}
	for _, a := range alertDefs {
		group.Rules = append(group.Rules, Rule{
			Alert:  a.name,
			Expr:   a.expr,
			For:    a.forDur,
			Labels: map[string]string{"severity": a.severity},
			Annotations: map[string]string{
				"summary":       a.summary,
				"description":   a.description,
				"dashboard_uid": DashboardUID,
			},
		})
	}
	return newPrometheusRule("cpm-alerts", group)
}
