package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// phone-resale operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "phone-resale-alerts",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "phone-resale-alerts",
					Rules: []Rule{
						{
							Alert:  "PhoneResaleDown",
							Expr:   `absent(up{job="phone-resale"})`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Phone resale server is down",
								"description": "The phone-resale job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert:  "PhoneResaleReadinessDown",
							Expr:   `phone_resale_readyz_up == 0`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Phone resale readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert:  "PhoneResaleHighErrorRate",
							Expr:   `phone_resale:http_errors:rate5m / phone_resale:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the phone resale server",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert:  "PhoneResaleImportFailures",
							Expr:   `phone_resale:import_failures:rate5m > 0`,
							For:    "10m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Bulk CSV imports are being rejected",
								"description": "At least one import has failed in each 5 minute window for the last 10 minutes.",
							},
						},
						{
							Alert:  "PhoneResaleNothingListable",
							Expr:   `sum(phone_resale_listable_phones) == 0 and phone_resale_inventory_units > 0`,
							For:    "30m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "No phone in stock can be listed on any platform",
								"description": "Inventory holds stock but every phone fails the listing rules on X, Y and Z.",
							},
						},
						{
							Alert:  "PhoneResaleWritesThrottled",
							Expr:   `sum(rate(phone_resale_rate_limited_total[5m])) > 1`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Write requests are being rate limited",
								"description": "More than one write request per second is being rejected with 429.",
							},
						},
					},
				},
			},
		},
	}
}

func severity(level string) map[string]string {
	return map[string]string{"severity": level}
}
