package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate shows API requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return trend("Request Rate", "API requests per second, health checks and scrapes excluded",
		series{`cpm:http_requests:rate5m`, "req/s"}).
		Unit("reqps").
		Legend(tableLegend("mean", "max"))
}

// LatencyPercentiles shows p50, p95 and p99 API latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	var qs []series
	for _, q := range []struct{ quantile, legend string }{
		{"0.50", "p50"},
		{"0.95", "p95"},
		{"0.99", "p99"},
	} {
		qs = append(qs, series{Quantile(q.quantile, "cpm_http_request_duration_seconds", "5m"), q.legend})
	}
	return trend("Latency Percentiles", "API request duration percentiles", qs...).
		Unit("s").
		Legend(tableLegend("mean", "max"))
}

// ErrorRate shows 5xx responses as a share of all API requests.
func ErrorRate() *timeseries.PanelBuilder {
	return trend("Error Rate %", "API 5xx responses as a percentage of requests",
		series{`cpm:http_errors:rate5m / cpm:http_requests:rate5m * 100`, "error %"}).
		Unit("percent").
		Thresholds(warnAt(1, 5)).
		ColorScheme(thresholdColors())
}

// InFlight shows API requests currently being served.
func InFlight() *stat.PanelBuilder {
	return single("In-flight Requests", "API requests being served right now",
		Sel("cpm_http_requests_in_flight")).
		Thresholds(warnAt(20, 50))
}

// Panics shows handler panics recovered in the last 24 hours.
func Panics() *stat.PanelBuilder {
	return single("Recovered Panics (24h)", "Handler panics turned into 500 responses",
		SumIncrease(Sel("cpm_http_panics_total"), "24h")).
		Thresholds(thresholds("green", step{1, "red"}))
}
