// Package listing decides whether a phone can be listed on a resale platform
// and at what price.
package listing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/phone-resale/pkg/condition"
	"github.com/donaldgifford/phone-resale/pkg/pricing"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// MinProfitablePrice is the lowest sale price that still covers platform fees.
// A price equal to it is profitable.
var MinProfitablePrice = decimal.NewFromInt(50)

// Reason explains why a listing attempt failed.
type Reason string

// Reason constants.
const (
	ReasonOutOfStock           Reason = "out_of_stock"
	ReasonUnsupportedCondition Reason = "unsupported_condition"
	ReasonUnprofitable         Reason = "unprofitable"
)

// Outcome is the result of evaluating one phone against one platform.
// When Listed is true Price and Label are set and Reason is empty. Failed
// outcomes carry whatever was computed before the failing check.
type Outcome struct {
	Platform domain.Platform
	Listed   bool
	Price    decimal.Decimal
	Label    string
	Reason   Reason
}

// Evaluate runs the listing checks in their fixed order: stock, condition
// label, price, profitability. The first failing check decides the reason.
// platform must be valid; an unknown platform panics.
func Evaluate(p *domain.Phone, platform domain.Platform) Outcome {
	if !platform.Valid() {
		panic(fmt.Sprintf("listing: unknown platform %q", platform))
	}

	out := Outcome{Platform: platform}

	if p.Stock <= 0 {
		out.Reason = ReasonOutOfStock
		return out
	}

	label := condition.Label(platform, p.Condition)
	if label == condition.Unsupported {
		out.Reason = ReasonUnsupportedCondition
		return out
	}
	out.Label = label

	out.Price = pricing.Price(p.BasePrice, platform)
	if out.Price.LessThan(MinProfitablePrice) {
		out.Reason = ReasonUnprofitable
		return out
	}

	out.Listed = true
	return out
}

// EvaluateAll evaluates p against every platform in display order.
func EvaluateAll(p *domain.Phone) []Outcome {
	platforms := domain.Platforms()
	out := make([]Outcome, 0, len(platforms))
	for _, platform := range platforms {
		out = append(out, Evaluate(p, platform))
	}
	return out
}

// FormatPrice renders a sale price with a currency sign and two decimals.
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(pricing.Places)
}

// Message renders the outcome as a user-facing sentence.
func (o Outcome) Message() string {
	if o.Listed {
		return fmt.Sprintf("Phone listed on %s at %s [%s]", o.Platform, FormatPrice(o.Price), o.Label)
	}

	switch o.Reason {
	case ReasonOutOfStock:
		return "Cannot list: phone out of stock."
	case ReasonUnsupportedCondition:
		return fmt.Sprintf("%s does not support this condition!", o.Platform)
	case ReasonUnprofitable:
		return fmt.Sprintf("Listing failed on %s: unprofitable (too high fees)", o.Platform)
	default:
		return fmt.Sprintf("Listing failed on %s", o.Platform)
	}
}
