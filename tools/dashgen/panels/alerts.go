package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsRate shows alerts created per second by alert type.
func AlertsRate() *timeseries.PanelBuilder {
	return trend("Alerts Created", "Alerts created per second, by type",
		series{SumRate(Sel("cpm_alerts_created_total"), "5m", "type"), "{{type}}"})
}

// AlertsBySeverity shows the last day's alerts per severity tier.
func AlertsBySeverity() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Alerts by Severity (24h)").
		Description("Alerts created in the last 24 hours, by priority").
		Datasource(DSRef()).
		Height(tsHeight).
		Span(tsWidth).
		WithTarget(PromQuery(SumIncrease(Sel("cpm_alerts_created_total"), "24h", "priority"), "{{priority}}", "A")).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(thresholds("green")).
		ColorScheme(paletteColors())
}

// CriticalAlerts shows critical alerts created in the last 24 hours.
func CriticalAlerts() *stat.PanelBuilder {
	return single("Critical Alerts (24h)", "Critical priority alerts created in the last 24 hours",
		SumIncrease(Sel("cpm_alerts_created_total", `priority="critical"`), "24h")).
		Thresholds(warnAt(1, 10)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// DeduplicatedAlerts shows alerts suppressed by the dedup window in the last
// 24 hours.
func DeduplicatedAlerts() *stat.PanelBuilder {
	return single("Suppressed Duplicates (24h)", "Alerts skipped because an equivalent alert was raised recently",
		SumIncrease(Sel("cpm_alerts_deduplicated_total"), "24h")).
		GraphMode(common.BigValueGraphModeArea)
}

// NotificationsRate shows deliveries per second by channel.
func NotificationsRate() *timeseries.PanelBuilder {
	return trend("Notifications Sent", "Alert notifications delivered per second, by channel",
		series{SumRate(Sel("cpm_notifications_sent_total"), "5m", "channel"), "{{channel}}"})
}

// NotificationLatency shows p95 send latency across channels.
func NotificationLatency() *timeseries.PanelBuilder {
	return trend("Notification Latency (p95)", "95th percentile notification send latency",
		series{`cpm:notification_duration:p95_5m`, "p95"}).
		Unit("s").
		Thresholds(warnAt(1, 5))
}

// NotificationFailures shows failed deliveries in the last 24 hours by
// channel.
func NotificationFailures() *timeseries.PanelBuilder {
	return trend("Notification Failures (24h)", "Failed alert notification deliveries, by channel",
		series{SumIncrease(Sel("cpm_notification_failures_total"), "24h", "channel"), "{{channel}}"}).
		Thresholds(warnAt(1, 5)).
		ColorScheme(thresholdColors()).
		DrawStyle(common.GraphDrawStyleBars)
}
