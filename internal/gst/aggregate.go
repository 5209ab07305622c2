// Package gst derives tax-liability views from the posted voucher
// collection.
package gst

import (
	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// Liability is the Output/Input x Local/Central tax summary for a set of
// posted vouchers.
type Liability struct {
	OutputLocal   decimal.Decimal
	OutputCentral decimal.Decimal
	InputLocal    decimal.Decimal
	InputCentral  decimal.Decimal
}

// TotalOutput returns tax collected on outward supplies.
func (l Liability) TotalOutput() decimal.Decimal {
	return l.OutputLocal.Add(l.OutputCentral)
}

// TotalInput returns tax credit on inward supplies.
func (l Liability) TotalInput() decimal.Decimal {
	return l.InputLocal.Add(l.InputCentral)
}

// NetPayable returns output minus input: positive is liability owed,
// negative is a refundable credit.
func (l Liability) NetPayable() decimal.Decimal {
	return l.TotalOutput().Sub(l.TotalInput())
}

// Aggregate folds every voucher carrying a tax total into the liability
// buckets. Return vouchers reverse previously recognized tax, so the
// aggregator owns sign derivation: a Sales Return subtracts from output and
// a Purchase Return subtracts from input, regardless of how the voucher's
// own tax total was stored upstream.
func Aggregate(vouchers []model.Voucher) Liability {
	var l Liability
	for _, v := range vouchers {
		if v.TaxTotal.IsZero() {
			continue
		}

		amount := v.TaxTotal
		switch v.GSTClassification {
		case model.TaxOutput:
			if v.Type == model.TypeSalesReturn {
				amount = amount.Neg()
			}
			if v.Jurisdiction == model.JurisdictionCentral {
				l.OutputCentral = l.OutputCentral.Add(amount)
			} else {
				l.OutputLocal = l.OutputLocal.Add(amount)
			}
		case model.TaxInput:
			if v.Type == model.TypePurchaseReturn {
				amount = amount.Neg()
			}
			if v.Jurisdiction == model.JurisdictionCentral {
				l.InputCentral = l.InputCentral.Add(amount)
			} else {
				l.InputLocal = l.InputLocal.Add(amount)
			}
		}
	}
	return l
}
