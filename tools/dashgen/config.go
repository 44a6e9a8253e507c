package main

import "errors"

// KnownMetrics is the set of metric names exported by phone-resale plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"phone_resale_http_request_duration_seconds": true,
	"phone_resale_http_requests_total":           true,
	"phone_resale_rate_limited_total":            true,

	// Health metrics.
	"phone_resale_healthz_up": true,
	"phone_resale_readyz_up":  true,

	// Listing metrics.
	"phone_resale_listing_attempts_total": true,

	// Import metrics.
	"phone_resale_phones_imported_total": true,
	"phone_resale_import_failures_total": true,

	// Inventory metrics.
	"phone_resale_inventory_phones":                   true,
	"phone_resale_inventory_units":                    true,
	"phone_resale_listable_phones":                    true,
	"phone_resale_inventory_refresh_duration_seconds": true,

	// Recording rules.
	"phone_resale:http_requests:rate5m":    true,
	"phone_resale:http_errors:rate5m":      true,
	"phone_resale:listing_attempts:rate5m": true,
	"phone_resale:phones_imported:rate5m":  true,
	"phone_resale:import_failures:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
