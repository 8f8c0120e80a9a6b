package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/competitive-price-monitor/tools/dashgen/dashboards"
	"github.com/donaldgifford/competitive-price-monitor/tools/dashgen/rules"
	"github.com/donaldgifford/competitive-price-monitor/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "cpm-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "CPM Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 6)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 22, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "cpm-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "cpm-recording", group.Name)

	expectedRecords := []string{
		"cpm:http_requests:rate5m",
		"cpm:http_errors:rate5m",
		"cpm:products_processed:rate5m",
		"cpm:product_failures:rate5m",
		"cpm:alerts_created:rate5m",
		"cpm:notification_failures:rate5m",
		"cpm:notification_duration:p95_5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "cpm-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "cpm-alerts", group.Name)

	expectedAlerts := []string{
		"CpmDown",
		"CpmReadinessDown",
		"CpmHighErrorRate",
		"CpmProductFailures",
		"CpmMonitoringStalled",
		"CpmRetentionFailures",
		"CpmNotificationFailures",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRuleFile_MergesGroups(t *testing.T) {
	t.Parallel()

	f := rules.File(rules.RecordingRules(), rules.AlertRules())
	require.Len(t, f.Groups, 2)
	assert.Equal(t, "cpm-recording", f.Groups[0].Name)
	assert.Equal(t, "cpm-alerts", f.Groups[1].Name)

	for _, r := range f.Groups[1].Rules {
		assert.Equal(t, dashboards.OverviewUID, r.Annotations["dashboard_uid"], r.Alert)
	}
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"cpm_http_request_duration_seconds": true, "cpm_readyz_up": true}

	tests := []struct {
		name     string
		expr     string
		problems int
	}{
		{name: "known gauge", expr: `cpm_readyz_up == 0`},
		{name: "histogram bucket", expr: `histogram_quantile(0.9, sum(rate(cpm_http_request_duration_seconds_bucket[5m])) by (le))`},
		{name: "unknown metric", expr: `rate(cpm_missing_total[5m])`, problems: 1},
		{name: "syntax error", expr: `sum(rate(cpm_readyz_up[5m])`, problems: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, validate.Expr(tt.expr, known), tt.problems)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	require.NoError(t, run(cfg, false))

	dashJSON, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "cpm-overview.json"))
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, json.Unmarshal(dashJSON, &dash))
	assert.Equal(t, "cpm-overview", dash["uid"])

	for _, name := range []string{"cpm-recording-rules.yaml", "cpm-alerts.yaml", "rules/cpm.rules.yml"} {
		data, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err)
		assert.Contains(t, string(data), generatedHeader)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
