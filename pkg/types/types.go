// Package domain defines the core business types for phone-resale.
package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// DefaultSpecs is stored when a phone is added without a specification text.
const DefaultSpecs = "N/A"

// Condition is the internal three-tier quality grade assigned at intake.
type Condition string

// Condition constants.
const (
	ConditionNew   Condition = "New"
	ConditionGood  Condition = "Good"
	ConditionScrap Condition = "Scrap"
)

// Conditions returns every internal grade in display order.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionGood, ConditionScrap}
}

// Valid reports whether c is one of the fixed grades.
func (c Condition) Valid() bool {
	return slices.Contains(Conditions(), c)
}

// ParseCondition maps free text ("new", " GOOD ") to a grade. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCondition(raw string) (Condition, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range Conditions() {
		if strings.ToLower(string(c)) == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown condition %q", raw)
}

// Platform identifies one of the resale channels.
type Platform string

// Platform constants.
const (
	PlatformX Platform = "X"
	PlatformY Platform = "Y"
	PlatformZ Platform = "Z"
)

// Platforms returns every supported resale platform in display order.
func Platforms() []Platform {
	return []Platform{PlatformX, PlatformY, PlatformZ}
}

// Valid reports whether p is one of the fixed platforms.
func (p Platform) Valid() bool {
	return slices.Contains(Platforms(), p)
}

// ParsePlatform maps text to a Platform. Matching is case-insensitive.
func ParsePlatform(raw string) (Platform, error) {
	p := Platform(strings.ToUpper(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q", raw)
	}
	return p, nil
}

// ErrInvalidPhone is wrapped by every Phone.Validate failure.
var ErrInvalidPhone = errors.New("invalid phone")

// Phone is a refurbished handset held in inventory.
type Phone struct {
	ID        int64     `json:"id"`
	Model     string    `json:"model"`
	Brand     string    `json:"brand"`
	BasePrice float64   `json:"base_price"`
	Stock     int       `json:"stock"`
	Condition Condition `json:"condition"`
	Specs     string    `json:"specs"`
}

// Validate checks the invariants every stored phone must satisfy.
func (p *Phone) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Model) == "" {
		errs = append(errs, errors.New("model is required"))
	}
	if strings.TrimSpace(p.Brand) == "" {
		errs = append(errs, errors.New("brand is required"))
	}
	if math.IsNaN(p.BasePrice) || math.IsInf(p.BasePrice, 0) || p.BasePrice <= 0 {
		errs = append(errs, fmt.Errorf("base_price must be positive (got %v)", p.BasePrice))
	}
	if p.Stock < 0 {
		errs = append(errs, fmt.Errorf("stock must not be negative (got %d)", p.Stock))
	}
	if !p.Condition.Valid() {
		errs = append(errs, fmt.Errorf("condition must be one of New, Good, Scrap (got %q)", p.Condition))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidPhone, errors.Join(errs...))
}

// ApplyDefaults fills optional fields that were left empty.
func (p *Phone) ApplyDefaults() {
	if strings.TrimSpace(p.Specs) == "" {
		p.Specs = DefaultSpecs
	}
}
