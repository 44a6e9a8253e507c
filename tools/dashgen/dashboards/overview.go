// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/phone-resale/tools/dashgen/panels"
)

// UID is the stable Grafana uid of the overview dashboard.
const UID = "phone-resale-overview"

// BuildOverview constructs the Phone Resale Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Phone Resale Overview").
		Uid(UID).
		Tags([]string{"phone-resale"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.UnitsStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.ListingAttempts()).
		WithPanel(panels.ListingSuccessRatio()).
		WithPanel(panels.ListablePhones()))

	b.WithRow(dashboard.NewRowBuilder("Inventory").
		WithPanel(panels.PhonesByCondition()).
		WithPanel(panels.RefreshDuration()).
		WithPanel(panels.ImportedRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
