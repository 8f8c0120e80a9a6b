package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RetentionDeleted shows rows removed by the retention sweep per store.
func RetentionDeleted() *timeseries.PanelBuilder {
	return trend("Rows Deleted by Retention", "Rows removed per day, by store",
		series{SumIncrease(Sel("cpm_retention_deleted_total"), "1d", "store"), "{{store}}"},
		series{SumIncrease(Sel("cpm_retention_failures_total"), "1d", "store"), "{{store}} failed"}).
		DrawStyle(common.GraphDrawStyleBars)
}

// JobRuns shows scheduled job runs per hour by job and outcome.
func JobRuns() *timeseries.PanelBuilder {
	return trend("Scheduled Job Runs", "Scheduler job runs per hour, by job and status",
		series{SumIncrease(Sel("cpm_scheduler_job_runs_total"), "1h", "job_name", "status"), "{{job_name}} {{status}}"}).
		DrawStyle(common.GraphDrawStyleBars)
}
