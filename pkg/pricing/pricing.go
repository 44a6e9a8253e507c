// Package pricing derives per-platform sale prices from a phone's base price.
package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// markup is a sale price formula of the form base*Rate + Flat.
type markup struct {
	Rate decimal.Decimal
	Flat decimal.Decimal
}

// markups holds the fixed formula for every platform.
var markups = map[domain.Platform]markup{
	domain.PlatformX: {Rate: decimal.RequireFromString("1.10"), Flat: decimal.Zero},
	domain.PlatformY: {Rate: decimal.RequireFromString("1.08"), Flat: decimal.NewFromInt(2)},
	domain.PlatformZ: {Rate: decimal.RequireFromString("1.12"), Flat: decimal.Zero},
}

// Places is the number of decimal places every sale price is rounded to.
const Places = 2

// Price returns the sale price of basePrice on platform p, rounded half-up to
// two places. basePrice must be positive and finite and p must be a known
// platform; anything else is a caller bug and panics.
func Price(basePrice float64, p domain.Platform) decimal.Decimal {
	m, ok := markups[p]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown platform %q", p))
	}
	return m.apply(base(basePrice))
}

// Prices returns the sale price on every platform.
func Prices(basePrice float64) map[domain.Platform]decimal.Decimal {
	b := base(basePrice)
	out := make(map[domain.Platform]decimal.Decimal, len(markups))
	for p, m := range markups {
		out[p] = m.apply(b)
	}
	return out
}

func (m markup) apply(b decimal.Decimal) decimal.Decimal {
	return b.Mul(m.Rate).Add(m.Flat).Round(Places)
}

// base converts a float base price to a decimal using its shortest
// representation, so 45.45 is exactly 45.45 and not 45.4500000000000028.
func base(basePrice float64) decimal.Decimal {
	if math.IsNaN(basePrice) || math.IsInf(basePrice, 0) || basePrice <= 0 {
		panic(fmt.Sprintf("pricing: base price must be positive and finite (got %v)", basePrice))
	}
	return decimal.NewFromFloat(basePrice)
}
