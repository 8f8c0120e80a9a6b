package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/competitive-price-monitor/internal/api/client"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

var stdout io.Writer = os.Stdout

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAlertsTable(alerts []domain.Alert) error {
	tw := newTabWriter(stdout)
	tw.writef("ID\tASIN\tTYPE\tPRIORITY\tOLD\tNEW\tCHANGE\tSTATE\tCREATED\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s%%\t%s\t%s\n",
			a.ID,
			a.ASIN,
			a.AlertType,
			a.Priority,
			a.OldValue.StringFixed(2),
			a.NewValue.StringFixed(2),
			a.ChangePercent.StringFixed(1),
			alertState(a),
			a.CreatedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func alertState(a *domain.Alert) string {
	switch {
	case a.IsDismissed:
		return "dismissed"
	case a.IsRead:
		return "read"
	default:
		return "unread"
	}
}

func printAlertStatistics(s *domain.AlertStatistics) error {
	tw := newTabWriter(stdout)
	tw.writef("Window:\t%d days\n", s.WindowDays)
	tw.writef("Total:\t%d\n", s.Total)
	tw.writef("Unread:\t%d\n", s.Unread)
	tw.writef("Critical:\t%d\n", s.Critical)
	tw.writef("Price alerts:\t%d\n", s.PriceAlerts)
	tw.writef("Rank alerts:\t%d\n", s.RankAlerts)
	for _, k := range sortedKeys(s.ByType) {
		tw.writef("  %s:\t%d\n", k, s.ByType[k])
	}
	for _, k := range sortedKeys(s.ByPriority) {
		tw.writef("  priority %s:\t%d\n", k, s.ByPriority[k])
	}
	return tw.finish()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func printHistoryTable(points []domain.Snapshot) error {
	tw := newTabWriter(stdout)
	tw.writef("RECORDED\tVALUE\tCURRENCY\tTYPE\tSOURCE\n")
	for i := range points {
		p := &points[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			p.RecordedAt.Format(timeLayout),
			p.Value.String(),
			p.Currency,
			p.ValueType,
			p.DataSource,
		)
	}
	return tw.finish()
}

func printMappingsTable(mappings []domain.ProductMapping) error {
	tw := newTabWriter(stdout)
	tw.writef("ID\tSKU\tCOMPETITOR\tPRIORITY\tACTIVE\tLAST CHECKED\tREASON\n")
	for i := range mappings {
		m := &mappings[i]
		checked := "-"
		if m.LastCheckedAt != nil {
			checked = m.LastCheckedAt.Format(timeLayout)
		}
		tw.writef("%s\t%s\t%s\t%d\t%v\t%s\t%s\n",
			m.ID,
			m.OurSellerSKU,
			m.CompetitorASIN,
			m.Priority,
			m.IsActive,
			checked,
			truncate(m.Reason, 40),
		)
	}
	return tw.finish()
}

func printCleanupTable(res *apiclient.CleanupResponse) error {
	tw := newTabWriter(stdout)
	tw.writef("STORE\tDELETED\tERROR\n")
	for _, s := range res.Steps {
		tw.writef("%s\t%d\t%s\n", s.Store, s.Deleted, truncate(s.Error, 60))
	}
	tw.writef("TOTAL\t%d\t\n", res.TotalDeleted)
	return tw.finish()
}

func printMonitoringStats(s *domain.MonitoringStats) error {
	tw := newTabWriter(stdout)
	tw.writef("Monitored products:\t%d\n", s.MonitoredProducts)
	tw.writef("Snapshot records:\t%d\n", s.SnapshotRecords)
	tw.writef("Total alerts:\t%d\n", s.TotalAlerts)
	tw.writef("Recent alerts:\t%d\n", s.RecentAlerts)
	tw.writef("Price alerts:\t%d\n", s.PriceAlerts)
	tw.writef("Rank alerts:\t%d\n", s.RankAlerts)
	if s.LastRunAt != nil {
		tw.writef("Last run:\t%s (%s)\n", s.LastRunAt.Format(timeLayout), s.LastRunStatus)
	}
	return tw.finish()
}

func printOverview(o *domain.CompetitiveOverview) error {
	tw := newTabWriter(stdout)
	tw.writef("Mapped products:\t%d\n", o.MappedProducts)
	tw.writef("Active mappings:\t%d\n", o.ActiveMappings)
	tw.writef("Price points:\t%d\n", o.PricePoints)
	tw.writef("Rank points:\t%d\n", o.RankPoints)
	tw.writef("Active alerts:\t%d (%d products)\n", o.ActiveAlerts, o.ProductsWithAlerts)
	tw.writef("Price alerts:\t%d (%d critical)\n", o.PriceAlerts, o.CriticalPriceAlerts)
	tw.writef("Rank alerts:\t%d (%d critical)\n", o.RankAlerts, o.CriticalRankAlerts)
	return tw.finish()
}

func printJobSummaries(jobs []domain.JobSummary) error {
	tw := newTabWriter(stdout)
	tw.writef("JOB\tLAST STATUS\tLAST STARTED\tNEXT RUN\n")
	for _, j := range jobs {
		status, started, next := "-", "-", "-"
		if j.LastRun != nil {
			status = j.LastRun.Status
			started = j.LastRun.StartedAt.Format(timeLayout)
		}
		if j.NextRunAt != nil {
			next = j.NextRunAt.Format(timeLayout)
		}
		tw.writef("%s\t%s\t%s\t%s\n", j.JobName, status, started, next)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printResult(res *apiclient.Result) error {
	if jsonOutput() {
		return outputJSON(res)
	}
	_, err := fmt.Fprintln(stdout, res.Message)
	return err
}

func outputJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
