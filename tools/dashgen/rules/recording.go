package rules

// RecordingRuleNames lists the series produced by RecordingRules, in order.
var RecordingRuleNames = []string{
	"phone_resale:http_requests:rate5m",
	"phone_resale:http_errors:rate5m",
	"phone_resale:listing_attempts:rate5m",
	"phone_resale:phones_imported:rate5m",
	"phone_resale:import_failures:rate5m",
}

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	exprs := []string{
		`sum(rate(phone_resale_http_requests_total[5m]))`,
		`sum(rate(phone_resale_http_requests_total{status=~"5.."}[5m]))`,
		`sum by (platform, outcome) (rate(phone_resale_listing_attempts_total[5m]))`,
		`rate(phone_resale_phones_imported_total[5m])`,
		`rate(phone_resale_import_failures_total[5m])`,
	}

	recs := make([]Rule, len(exprs))
	for i, expr := range exprs {
		recs[i] = Rule{Record: RecordingRuleNames[i], Expr: expr}
	}

	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "phone-resale-recording-rules",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{{Name: "phone-resale-recording", Rules: recs}},
		},
	}
}
