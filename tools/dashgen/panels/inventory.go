package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PhonesByCondition returns a stacked timeseries panel showing phone
// records by condition grade.
func PhonesByCondition() *timeseries.PanelBuilder {
	return timeseriesPanel("Phones by Condition", "Phone records in inventory by condition", "short").
		WithTarget(PromQuery(`phone_resale_inventory_phones`, "{{condition}}", "A")).
		Stacking(common.NewStackingConfigBuilder().Mode(common.StackingModeNormal))
}

// RefreshDuration returns a timeseries panel showing the p95 duration of
// scheduled inventory refreshes.
func RefreshDuration() *timeseries.PanelBuilder {
	return timeseriesPanel("Inventory Refresh p95", "95th percentile duration of the inventory refresh job", "s").
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(phone_resale_inventory_refresh_duration_seconds_bucket[15m])) by (le))`,
			"p95", "A",
		))
}

// ImportedRate returns a timeseries panel showing imported phones and
// rejected import files.
func ImportedRate() *timeseries.PanelBuilder {
	return timeseriesPanel("Bulk Imports", "Phones imported and imports rejected per second", "ops").
		WithTarget(PromQuery(`phone_resale:phones_imported:rate5m`, "imported", "A")).
		WithTarget(PromQuery(`phone_resale:import_failures:rate5m`, "rejected", "B"))
}
