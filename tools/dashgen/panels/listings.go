package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ListingAttempts returns a timeseries panel showing listing attempts per
// second by platform and outcome.
func ListingAttempts() *timeseries.PanelBuilder {
	return timeseriesPanel("Listing Attempts", "Listing evaluations per second by platform and outcome", "ops").
		WithTarget(PromQuery(
			`phone_resale:listing_attempts:rate5m`,
			"{{platform}} {{outcome}}", "A",
		))
}

// ListingSuccessRatio returns a timeseries panel showing the share of
// attempts that listed, per platform.
func ListingSuccessRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listing Success %").
		Description("Share of listing attempts that succeeded, by platform").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (platform) (phone_resale:listing_attempts:rate5m{outcome="listed"})`+
				` / sum by (platform) (phone_resale:listing_attempts:rate5m) * 100`,
			"{{platform}}", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "min")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ListablePhones returns a timeseries panel showing how many phones would
// currently list on each platform.
func ListablePhones() *timeseries.PanelBuilder {
	return timeseriesPanel("Listable Phones", "Phones that would list successfully right now, by platform", "short").
		WithTarget(PromQuery(`phone_resale_listable_phones`, "{{platform}}", "A"))
}
