// Package validate checks generated dashboards and rules for PromQL that
// does not parse or that references metrics the server never exports.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation problems. Errors fail generation, warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	var panels []dashboard.Panel
	for _, p := range dash.Panels {
		switch {
		case p.Panel != nil:
			panels = append(panels, *p.Panel)
		case p.RowPanel != nil:
			panels = append(panels, p.RowPanel.Panels...)
		}
	}

	for _, p := range panels {
		title := "<untitled>"
		if p.Title != nil {
			title = *p.Title
		}
		if len(p.Targets) == 0 {
			res.warnf("panel %q has no targets", title)
			continue
		}
		for _, t := range p.Targets {
			q, ok := t.(*prometheus.Dataquery)
			if !ok {
				res.warnf("panel %q has a non-Prometheus target", title)
				continue
			}
			Expr(&res, fmt.Sprintf("panel %q", title), q.Expr, known)
		}
	}
	return res
}

// Rules validates a set of rule expressions keyed by rule name.
func Rules(exprs map[string]string, known map[string]bool) Result {
	var res Result

	names := make([]string, 0, len(exprs))
	for name := range exprs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		Expr(&res, fmt.Sprintf("rule %q", name), exprs[name], known)
	}
	return res
}

// Expr parses a single PromQL expression and records an error for each
// selector whose metric name is not in known.
func Expr(res *Result, where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[metricFamily(vs.Name)] {
			res.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

// metricFamily strips the series suffixes Prometheus adds to histograms.
func metricFamily(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}
