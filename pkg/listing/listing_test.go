package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-resale/pkg/listing"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

func phone(base float64, stock int, c domain.Condition) *domain.Phone {
	return &domain.Phone{
		ID:        1,
		Model:     "Galaxy S21",
		Brand:     "Samsung",
		BasePrice: base,
		Stock:     stock,
		Condition: c,
		Specs:     domain.DefaultSpecs,
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		phone      *domain.Phone
		platform   domain.Platform
		wantListed bool
		wantPrice  string
		wantLabel  string
		wantReason listing.Reason
		wantMsg    string
	}{
		{
			name:       "new phone on X",
			phone:      phone(100, 5, domain.ConditionNew),
			platform:   domain.PlatformX,
			wantListed: true,
			wantPrice:  "110.00",
			wantLabel:  "New",
			wantMsg:    "Phone listed on X at $110.00 [New]",
		},
		{
			name:       "new phone on Y",
			phone:      phone(100, 5, domain.ConditionNew),
			platform:   domain.PlatformY,
			wantListed: true,
			wantPrice:  "110.00",
			wantLabel:  "3 stars",
			wantMsg:    "Phone listed on Y at $110.00 [3 stars]",
		},
		{
			name:       "new phone on Z",
			phone:      phone(100, 5, domain.ConditionNew),
			platform:   domain.PlatformZ,
			wantListed: true,
			wantPrice:  "112.00",
			wantLabel:  "New",
			wantMsg:    "Phone listed on Z at $112.00 [New]",
		},
		{
			name:       "out of stock",
			phone:      phone(100, 0, domain.ConditionNew),
			platform:   domain.PlatformX,
			wantReason: listing.ReasonOutOfStock,
			wantPrice:  "0.00",
			wantMsg:    "Cannot list: phone out of stock.",
		},
		{
			name:       "cheap good phone on X is unprofitable",
			phone:      phone(10, 3, domain.ConditionGood),
			platform:   domain.PlatformX,
			wantPrice:  "11.00",
			wantLabel:  "Good",
			wantReason: listing.ReasonUnprofitable,
			wantMsg:    "Listing failed on X: unprofitable (too high fees)",
		},
		{
			name:       "scrap phone on Y is unprofitable",
			phone:      phone(40, 1, domain.ConditionScrap),
			platform:   domain.PlatformY,
			wantPrice:  "45.20",
			wantLabel:  "1 star",
			wantReason: listing.ReasonUnprofitable,
			wantMsg:    "Listing failed on Y: unprofitable (too high fees)",
		},
		{
			name:       "unknown grade is unsupported",
			phone:      phone(100, 2, "Mint"),
			platform:   domain.PlatformZ,
			wantPrice:  "0.00",
			wantReason: listing.ReasonUnsupportedCondition,
			wantMsg:    "Z does not support this condition!",
		},
		{
			name:       "scrap on Z maps to As New",
			phone:      phone(60, 1, domain.ConditionScrap),
			platform:   domain.PlatformZ,
			wantListed: true,
			wantPrice:  "67.20",
			wantLabel:  "As New",
			wantMsg:    "Phone listed on Z at $67.20 [As New]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := listing.Evaluate(tt.phone, tt.platform)
			assert.Equal(t, tt.platform, got.Platform)
			assert.Equal(t, tt.wantListed, got.Listed)
			assert.Equal(t, tt.wantPrice, got.Price.StringFixed(2))
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.wantMsg, got.Message())
		})
	}
}

func TestEvaluate_OutOfStockOnEveryPlatform(t *testing.T) {
	t.Parallel()

	p := phone(100, 0, domain.ConditionNew)
	for _, platform := range domain.Platforms() {
		got := listing.Evaluate(p, platform)
		assert.False(t, got.Listed)
		assert.Equal(t, listing.ReasonOutOfStock, got.Reason, platform)
	}
}

func TestEvaluate_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone *domain.Phone
		want  listing.Reason
	}{
		{
			name:  "out of stock beats unsupported",
			phone: phone(100, 0, "Mint"),
			want:  listing.ReasonOutOfStock,
		},
		{
			name:  "out of stock beats unprofitable",
			phone: phone(1, 0, domain.ConditionGood),
			want:  listing.ReasonOutOfStock,
		},
		{
			name:  "unsupported beats unprofitable",
			phone: phone(1, 4, "Mint"),
			want:  listing.ReasonUnsupportedCondition,
		},
		{
			name:  "out of stock is checked before the price precondition",
			phone: phone(0, 0, domain.ConditionNew),
			want:  listing.ReasonOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, platform := range domain.Platforms() {
				got := listing.Evaluate(tt.phone, platform)
				assert.Equal(t, tt.want, got.Reason, platform)
			}
		})
	}
}

func TestEvaluate_ProfitabilityBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		base       float64
		wantPrice  string
		wantListed bool
	}{
		{name: "exactly 50.00 is profitable", base: 45.45, wantPrice: "50.00", wantListed: true},
		{name: "49.99 is unprofitable", base: 45.445, wantPrice: "49.99", wantListed: false},
		{name: "50.01 is profitable", base: 45.46, wantPrice: "50.01", wantListed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := listing.Evaluate(phone(tt.base, 1, domain.ConditionGood), domain.PlatformX)
			assert.Equal(t, tt.wantPrice, got.Price.StringFixed(2))
			assert.Equal(t, tt.wantListed, got.Listed)
			if !tt.wantListed {
				assert.Equal(t, listing.ReasonUnprofitable, got.Reason)
			}
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	t.Parallel()

	p := phone(73.33, 2, domain.ConditionScrap)
	before := *p

	for _, platform := range domain.Platforms() {
		first := listing.Evaluate(p, platform)
		for range 5 {
			again := listing.Evaluate(p, platform)
			assert.Equal(t, first.Listed, again.Listed)
			assert.Equal(t, first.Reason, again.Reason)
			assert.Equal(t, first.Label, again.Label)
			assert.True(t, first.Price.Equal(again.Price))
		}
	}

	assert.Equal(t, before, *p, "evaluation must not mutate the phone")
}

func TestEvaluate_UnknownPlatformPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		listing.Evaluate(phone(100, 1, domain.ConditionNew), "W")
	})
}

func TestEvaluate_InvalidBasePricePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		listing.Evaluate(phone(0, 1, domain.ConditionNew), domain.PlatformX)
	})
}

func TestEvaluateAll(t *testing.T) {
	t.Parallel()

	got := listing.EvaluateAll(phone(40, 1, domain.ConditionScrap))
	require.Len(t, got, 3)

	assert.Equal(t, domain.PlatformX, got[0].Platform)
	assert.Equal(t, "44.00", got[0].Price.StringFixed(2))
	assert.Equal(t, "Scrap", got[0].Label)

	assert.Equal(t, domain.PlatformY, got[1].Platform)
	assert.Equal(t, "1 star", got[1].Label)

	assert.Equal(t, domain.PlatformZ, got[2].Platform)
	assert.Equal(t, "44.80", got[2].Price.StringFixed(2))
	assert.Equal(t, "As New", got[2].Label)

	for _, o := range got {
		assert.Equal(t, listing.ReasonUnprofitable, o.Reason)
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	got := listing.Evaluate(phone(100, 1, domain.ConditionNew), domain.PlatformX)
	assert.Equal(t, "$110.00", listing.FormatPrice(got.Price))
}
