// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the service does not export.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/competitive-price-monitor/tools/dashgen/rules"
)

// histogramSuffixes are stripped before looking a series up in the known set.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation, warnings do
// not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there are no errors.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

// Errs returns the errors as error values.
func (r Result) Errs() []error {
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, errors.New(e))
	}
	return errs
}

// Expr parses a PromQL expression and returns one message per problem.
func Expr(expr string, known map[string]bool) []string {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		return []string{fmt.Sprintf("invalid PromQL %q: %v", expr, err)}
	}

	var problems []string
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[metricBase(vs.Name)] {
			problems = append(problems, fmt.Sprintf("unknown metric %q", vs.Name))
		}
		return nil
	})
	return problems
}

func metricBase(name string) string {
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		if p.Panel != nil {
			checkPanel(&res, *p.Panel, known)
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				checkPanel(&res, inner, known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p dashboard.Panel, known map[string]bool) {
	title := "untitled"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
		return
	}
	for _, target := range p.Targets {
		expr, ok := targetExpr(target)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has a non-Prometheus target", title))
			continue
		}
		for _, problem := range Expr(expr, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("panel %q: %s", title, problem))
		}
	}
}

func targetExpr(target any) (string, bool) {
	switch q := target.(type) {
	case prometheus.Dataquery:
		return q.Expr, true
	case *prometheus.Dataquery:
		return q.Expr, true
	default:
		return "", false
	}
}

// Rules validates every rule expression in a PrometheusRule resource.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %q: rule without record or alert name", g.Name))
				continue
			}
			if r.Record != "" && !known[r.Record] {
				res.Warnings = append(res.Warnings, fmt.Sprintf("recording rule %q is not listed as known", r.Record))
			}
			for _, problem := range Expr(r.Expr, known) {
				res.Errors = append(res.Errors, fmt.Sprintf("rule %q: %s", name, problem))
			}
		}
	}
	return res
}
