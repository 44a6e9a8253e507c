package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Request Rate", "HTTP requests per second", "reqps").
		WithTarget(PromQuery(`phone_resale:http_requests:rate5m`, "req/s", "A"))
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := timeseriesPanel("Latency Percentiles", "HTTP request duration percentiles", "s")
	for i, q := range []string{"0.50", "0.95", "0.99"} {
		expr := fmt.Sprintf(
			`histogram_quantile(%s, sum(rate(phone_resale_http_request_duration_seconds_bucket{job=%q}[5m])) by (le))`,
			q, Job,
		)
		b = b.WithTarget(PromQuery(expr, "p"+q[2:], string(rune('A'+i))))
	}
	return b
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Error Rate %").
		Description("HTTP 5xx error rate as percentage of total requests").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`phone_resale:http_errors:rate5m / phone_resale:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RateLimited returns a timeseries panel showing write requests rejected
// with 429, split by method.
func RateLimited() *timeseries.PanelBuilder {
	return timeseriesPanel("Rate Limited", "Write requests rejected by the rate limiter", "reqps").
		WithTarget(PromQuery(
			`sum by (method) (rate(phone_resale_rate_limited_total[5m]))`,
			"{{method}}", "A",
		))
}
