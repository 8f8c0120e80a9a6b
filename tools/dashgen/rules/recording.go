package rules

// recordings maps each recorded series to its expression. Order is the
// order they are written.
var recordings = []struct{ record, expr string }{
	{"cpm:http_requests:rate5m", `sum(rate(cpm_http_requests_total[5m]))`},
	{"cpm:http_errors:rate5m", `sum(rate(cpm_http_requests_total{status=~"5.."}[5m]))`},
	{"cpm:products_processed:rate5m", `sum(rate(cpm_products_processed_total[5m]))`},
	{"cpm:product_failures:rate5m", `sum(rate(cpm_product_failures_total[5m]))`},
	{"cpm:alerts_created:rate5m", `sum by (priority) (rate(cpm_alerts_created_total[5m]))`},
	{"cpm:notification_failures:rate5m", `sum by (channel) (rate(cpm_notification_failures_total[5m]))`},
	{"cpm:notification_duration:p95_5m", `histogram_quantile(0.95, sum by (le) (rate(cpm_notification_duration_seconds_bucket[5m])))`},
}

// RecordingRules returns the pre-computed rates used by the dashboard and
// alert rules.
func RecordingRules() PrometheusRule {
	group := RuleGroup{Name: "cpm-recording", Interval: "1m"}
	for _, r := range recordings {
		group.Rules = append(group.Rules, Rule{Record: r.record, Expr: r.expr})
	}
	return newPrometheusRule("cpm-recording-rules", group)
}
