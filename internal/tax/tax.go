// Package tax computes GST rate splits and tax amounts. It is the single
// source of truth for CGST/SGST/IGST derivation; callers must never recompute
// the split inline.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// RateError reports a GST rate outside the valid 0-100 percentage range.
// It is raised before any arithmetic is performed.
type RateError struct {
	Rate decimal.Decimal
}

func (e RateError) Error() string {
	return fmt.Sprintf("tax rate %s out of range [0, 100]", e.Rate)
}

// Split holds the per-component GST rates derived from a composite rate.
type Split struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
}

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// SplitTax derives component rates from a composite GST rate. Local
// jurisdiction splits evenly into CGST+SGST; Central carries the whole rate
// as IGST. A zero rate is valid (exempt goods) and yields a zero split.
func SplitTax(rate decimal.Decimal, jurisdiction model.Jurisdiction) (Split, error) {
	if err := checkRate(rate); err != nil {
		return Split{}, err
	}
	if jurisdiction == model.JurisdictionCentral {
		return Split{CGST: decimal.Zero, SGST: decimal.Zero, IGST: rate}, nil
	}
	half := rate.Div(two)
	return Split{CGST: half, SGST: half, IGST: decimal.Zero}, nil
}

// Amount computes base*rate/100. No rounding happens here; rounding is a
// presentation concern, and rounding per line would compound error across
// many lines.
func Amount(base, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := checkRate(rate); err != nil {
		return decimal.Zero, err
	}
	return base.Mul(rate).Div(hundred), nil
}

func checkRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return RateError{Rate: rate}
	}
	return nil
}
