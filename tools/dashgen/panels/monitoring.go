package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ProductsRate shows processed and failed product units per second.
func ProductsRate() *timeseries.PanelBuilder {
	return trend("Products Processed", "Product units compared per second, and those whose comparison failed",
		series{`cpm:products_processed:rate5m`, "processed"},
		series{`cpm:product_failures:rate5m`, "failed"}).
		Unit("ops").
		Legend(tableLegend("mean", "max"))
}

// CycleDuration shows monitoring cycle duration percentiles. Cycles run
// hourly, so the window is wide.
func CycleDuration() *timeseries.PanelBuilder {
	return trend("Monitoring Cycle Duration", "p50 and p95 duration of monitoring cycles",
		series{Quantile("0.50", "cpm_monitoring_cycle_duration_seconds", "1h"), "p50"},
		series{Quantile("0.95", "cpm_monitoring_cycle_duration_seconds", "1h"), "p95"}).
		Unit("s")
}

// ComparisonsRate shows undercut and outrank comparisons per second.
func ComparisonsRate() *timeseries.PanelBuilder {
	return trend("Comparisons", "Competitor comparisons computed per second, by kind",
		series{SumRate(Sel("cpm_comparisons_total"), "5m", "kind"), "{{kind}}"}).
		Unit("ops")
}

// ObservationsRate shows accepted observations per second by kind and side.
func ObservationsRate() *timeseries.PanelBuilder {
	return trend("Observations Ingested", "Price and rank observations accepted per second",
		series{SumRate(Sel("cpm_observations_ingested_total"), "5m", "kind", "side"), "{{kind}} {{side}}"}).
		Unit("ops")
}
