package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, ListingAttemptsTotal)
	assert.NotNil(t, PhonesImportedTotal)
	assert.NotNil(t, ImportFailuresTotal)
	assert.NotNil(t, InventoryPhones)
	assert.NotNil(t, InventoryUnits)
	assert.NotNil(t, ListablePhones)
	assert.NotNil(t, InventoryRefreshDuration)
	assert.NotNil(t, RateLimitedTotal)
}

func TestListingAttemptsTotal_Labels(t *testing.T) {
	t.Parallel()

	c := ListingAttemptsTotal.WithLabelValues("Q", "listed")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.0001)
}

func TestInventoryRefreshDuration_Observe(t *testing.T) {
	t.Parallel()

	InventoryRefreshDuration.Observe(0.002)

	m := &io_prometheus_client.Metric{}
	require.NoError(t, InventoryRefreshDuration.Write(m))
	assert.Positive(t, m.GetHistogram().GetSampleCount())
}
