// Package rules generates the Prometheus recording and alerting rules for
// competitive-price-monitor, both as Prometheus Operator PrometheusRule
// resources and as a plain rules file for a standalone Prometheus.
package rules

// PrometheusRule is the Prometheus Operator custom resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the resource name and selector labels.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named set of rules evaluated together.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is either a recording rule (Record set) or an alert (Alert set).
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// RuleFile is the on-disk format read by Prometheus' rule_files.
type RuleFile struct {
	Groups []RuleGroup `yaml:"groups"`
}

// selectorLabels match the rule selector of the cluster Prometheus.
var selectorLabels = map[string]string{"prometheus": "system-rules-prometheus"}

func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   PrometheusRuleMetadata{Name: name, Labels: selectorLabels},
		Spec:       PrometheusRuleSpec{Groups: groups},
	}
}

// File merges the groups of several resources into one plain rules file.
func File(crs ...PrometheusRule) RuleFile {
	var f RuleFile
	for _, cr := range crs {
		f.Groups = append(f.Groups, cr.Spec.Groups...)
	}
	return f
}
