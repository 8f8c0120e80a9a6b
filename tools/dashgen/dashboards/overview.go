// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/competitive-price-monitor/tools/dashgen/panels"
	"github.com/donaldgifford/competitive-price-monitor/tools/dashgen/rules"
)

// OverviewUID is the stable dashboard uid that alert annotations link to.
const OverviewUID = rules.DashboardUID

type row struct {
	title  string
	panels []cog.Builder[dashboard.Panel]
}

// overviewRows lists the dashboard top to bottom.
func overviewRows() []row {
	return []row{
		{"Overview", []cog.Builder[dashboard.Panel]{
			panels.HealthzStat(), panels.ReadyzStat(), panels.NextMonitoringRun(), panels.UptimeStat(),
		}},
		{"HTTP", []cog.Builder[dashboard.Panel]{
			panels.RequestRate(), panels.LatencyPercentiles(), panels.ErrorRate(), panels.InFlight(), panels.Panics(),
		}},
		{"Monitoring", []cog.Builder[dashboard.Panel]{
			panels.ProductsRate(), panels.CycleDuration(), panels.ComparisonsRate(), panels.ObservationsRate(),
		}},
		{"Alerts", []cog.Builder[dashboard.Panel]{
			panels.AlertsRate(), panels.AlertsBySeverity(), panels.CriticalAlerts(), panels.DeduplicatedAlerts(),
		}},
		{"Notifications", []cog.Builder[dashboard.Panel]{
			panels.NotificationsRate(), panels.NotificationLatency(), panels.NotificationFailures(),
		}},
		{"Retention & Scheduler", []cog.Builder[dashboard.Panel]{
			panels.RetentionDeleted(), panels.JobRuns(),
		}},
	}
}

// BuildOverview constructs the CPM Overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("CPM Overview").
		Uid(OverviewUID).
		Tags([]string{"cpm", "competitive-price-monitor"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(dashboard.NewDatasourceVariableBuilder("datasource").
			Label("Datasource").
			Type("prometheus"))

	for _, r := range overviewRows() {
		rb := dashboard.NewRowBuilder(r.title)
		for _, p := range r.panels {
			rb = rb.WithPanel(p)
		}
		b = b.WithRow(rb)
	}
	return b
}
