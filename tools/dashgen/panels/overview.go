package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the last liveness check result.
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", "Liveness check (1 = ok, 0 = failing)", "cpm_healthz_up")
}

// ReadyzStat shows the last readiness check result, which includes the
// database ping.
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", "Readiness check including the database (1 = ready, 0 = not ready)", "cpm_readyz_up")
}

func upStat(title, description, metric string) *stat.PanelBuilder {
	return single(title, description, Sel(metric)).
		Thresholds(thresholds("red", step{1, "green"})).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// NextMonitoringRun shows the time until the scheduler's next monitoring
// cycle.
func NextMonitoringRun() *stat.PanelBuilder {
	return single("Next Monitoring Run", "Time until the next scheduled monitoring cycle",
		Sel("cpm_scheduler_next_monitoring_timestamp")+" - time()").
		Unit("s")
}

// UptimeStat shows time since the process started.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start",
		"time() - "+Sel("process_start_time_seconds")).
		Unit("s")
}
