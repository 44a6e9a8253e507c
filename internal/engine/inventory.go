package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/phone-resale/internal/metrics"
	"github.com/donaldgifford/phone-resale/pkg/listing"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// InventorySummary is a point-in-time view of the inventory.
type InventorySummary struct {
	Phones      int                      `json:"phones"`
	Units       int                      `json:"units"`
	ByCondition map[domain.Condition]int `json:"by_condition"`
	Listable    map[domain.Platform]int  `json:"listable"`
}

// Summarize walks the whole inventory, counting phones per grade and how many
// would list successfully on each platform.
func (eng *Engine) Summarize(ctx context.Context) (*InventorySummary, error) {
	phones, _, err := eng.store.ListPhones(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing phones: %w", err)
	}

	sum := &InventorySummary{
		ByCondition: make(map[domain.Condition]int, len(domain.Conditions())),
		Listable:    make(map[domain.Platform]int, len(domain.Platforms())),
	}
	for _, c := range domain.Conditions() {
		sum.ByCondition[c] = 0
	}
	for _, p := range domain.Platforms() {
		sum.Listable[p] = 0
	}

	for i := range phones {
		p := &phones[i]
		sum.Phones++
		sum.Units += p.Stock
		sum.ByCondition[p.Condition]++

		for _, o := range listing.EvaluateAll(p) {
			if o.Listed {
				sum.Listable[o.Platform]++
			}
		}
	}

	return sum, nil
}

// RefreshInventoryMetrics recomputes the inventory gauges.
func (eng *Engine) RefreshInventoryMetrics(ctx context.Context) (err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RefreshInventoryMetrics")
	defer func() { endSpan(span, err) }()

	start := time.Now()
	defer func() {
		metrics.InventoryRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	sum, err := eng.Summarize(ctx)
	if err != nil {
		return err
	}

	for c, n := range sum.ByCondition {
		metrics.InventoryPhones.WithLabelValues(string(c)).Set(float64(n))
	}
	for p, n := range sum.Listable {
		metrics.ListablePhones.WithLabelValues(string(p)).Set(float64(n))
	}
	metrics.InventoryUnits.Set(float64(sum.Units))
	span.SetAttributes(
		attribute.Int("inventory.phones", sum.Phones),
		attribute.Int("inventory.units", sum.Units),
	)

	eng.log.Debug("inventory metrics refreshed",
		"phones", sum.Phones,
		"units", sum.Units,
	)
	return nil
}
