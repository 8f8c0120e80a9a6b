// Package panels provides Grafana dashboard panel builders for
// competitive-price-monitor metrics.
package panels

import (
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Job is the Prometheus scrape job label of the service.
const Job = `job="competitive-price-monitor"`

// Panel sizes on the 24-column grid.
const (
	statWidth  = 6
	statHeight = 4
	tsWidth    = 12
	tsHeight   = 8
)

// Sel returns a selector for metric scoped to the service's job, with any
// extra label matchers appended.
func Sel(metric string, matchers ...string) string {
	return metric + "{" + strings.Join(append([]string{Job}, matchers...), ", ") + "}"
}

// SumRate aggregates the per-second rate of sel over window, grouped by the
// given labels.
func SumRate(sel, window string, by ...string) string {
	return aggregate("rate", sel, window, by)
}

// SumIncrease aggregates the increase of sel over window, grouped by the
// given labels.
func SumIncrease(sel, window string, by ...string) string {
	return aggregate("increase", sel, window, by)
}

func aggregate(fn, sel, window string, by []string) string {
	inner := fn + "(" + sel + "[" + window + "])"
	if len(by) == 0 {
		return "sum(" + inner + ")"
	}
	return "sum by (" + strings.Join(by, ", ") + ") (" + inner + ")"
}

// Quantile returns the q quantile of a service histogram over window.
func Quantile(q, histogram, window string) string {
	return "histogram_quantile(" + q + ", " + SumRate(Sel(histogram+"_bucket"), window, "le") + ")"
}

// DSRef points at the ${datasource} template variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery builds a Prometheus query target.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// series is one query of a panel. Ref ids are assigned in order.
type series struct {
	expr   string
	legend string
}

func refID(i int) string {
	return string(rune('A' + i))
}

// trend returns a line timeseries panel carrying the dashboard's house style.
func trend(title, description string, queries ...series) *timeseries.PanelBuilder {
	b := timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(tsHeight).
		Span(tsWidth).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(multiTooltip()).
		Thresholds(thresholds("green")).
		ColorScheme(paletteColors()).
		DrawStyle(common.GraphDrawStyleLine)
	for i, q := range queries {
		b = b.WithTarget(PromQuery(q.expr, q.legend, refID(i)))
	}
	return b
}

// single returns a stat panel showing one value without a sparkline.
func single(title, description, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(statHeight).
		Span(statWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Thresholds(thresholds("green")).
		ColorScheme(thresholdColors()).
		GraphMode(common.BigValueGraphModeNone)
}

// step switches the threshold colour at a value.
type step struct {
	at    float64
	color string
}

// thresholds starts at base and switches colour at each step.
func thresholds(base string, steps ...step) cog.Builder[dashboard.ThresholdsConfig] {
	list := []dashboard.Threshold{{Color: base}}
	for _, s := range steps {
		list = append(list, dashboard.Threshold{Value: cog.ToPtr(s.at), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(list)
}

// warnAt is the usual green, yellow, red ladder.
func warnAt(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("green", step{yellow, "yellow"}, step{red, "red"})
}

func thresholdColors() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds)
}

func paletteColors() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic)
}

func tableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

func multiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
