package vouchers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/tax"
)

// Rule names attached to validation errors.
const (
	RuleMode      = "mode"
	RuleEntries   = "entries"
	RuleLedgerRef = "ledger-ref"
	RuleAmount    = "amount"
	RuleBalance   = "balance"
	RuleParty     = "party"
	RuleItems     = "items"
	RuleTaxRate   = "tax-rate"
	RuleTotal     = "total"
)

// balanceTolerance allows for float noise in drafts produced by float-based
// front ends.
var balanceTolerance = decimal.RequireFromString("0.01")

// LedgerChecker tests whether a ledger ID exists in the chart of ledgers.
type LedgerChecker interface {
	Exists(id string) bool
}

// Validate checks a draft against the posting rules for its entry mode.
// It is side-effect free and returns every violated rule with a specific,
// user-facing description; an empty result means the draft may be posted.
func Validate(draft model.VoucherDraft, ledgers LedgerChecker) ValidationErrors {
	switch draft.Mode {
	case model.ModeLedger:
		return validateLedgerMode(draft, ledgers)
	case model.ModeItemized:
		return validateItemizedMode(draft, ledgers)
	default:
		return ValidationErrors{{
			Rule:        RuleMode,
			Description: fmt.Sprintf("unknown entry mode %q", draft.Mode),
		}}
	}
}

func validateLedgerMode(draft model.VoucherDraft, ledgers LedgerChecker) ValidationErrors {
	var errs ValidationErrors

	if len(draft.Entries) < 2 {
		errs = append(errs, ValidationError{
			Rule:        RuleEntries,
			Description: fmt.Sprintf("a double-entry voucher needs at least 2 entries, got %d", len(draft.Entries)),
		})
	}

	totalDr := decimal.Zero
	totalCr := decimal.Zero
	for i, e := range draft.Entries {
		if e.LedgerID == "" {
			errs = append(errs, ValidationError{
				Rule:        RuleLedgerRef,
				Description: fmt.Sprintf("entry %d has no ledger selected", i+1),
			})
		} else if ledgers != nil && !ledgers.Exists(e.LedgerID) {
			errs = append(errs, ValidationError{
				Rule:        RuleLedgerRef,
				Description: fmt.Sprintf("entry %d references unknown ledger %s", i+1, e.LedgerID),
			})
		}
		if !e.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Rule:        RuleAmount,
				Description: fmt.Sprintf("entry %d amount must be greater than zero", i+1),
			})
		}
		switch e.Side {
		case model.SideDebit:
			totalDr = totalDr.Add(e.Amount)
		case model.SideCredit:
			totalCr = totalCr.Add(e.Amount)
		default:
			errs = append(errs, ValidationError{
				Rule:        RuleEntries,
				Description: fmt.Sprintf("entry %d has invalid side %q", i+1, e.Side),
			})
		}
	}

	if !totalDr.IsPositive() {
		errs = append(errs, ValidationError{
			Rule:        RuleBalance,
			Description: "total debits must be greater than zero",
		})
	}
	if totalDr.Sub(totalCr).Abs().GreaterThanOrEqual(balanceTolerance) {
		errs = append(errs, ValidationError{
			Rule: RuleBalance,
			Description: fmt.Sprintf("debits (%s) and credits (%s) do not balance",
				totalDr.StringFixed(2), totalCr.StringFixed(2)),
		})
	}

	return errs
}

func validateItemizedMode(draft model.VoucherDraft, ledgers LedgerChecker) ValidationErrors {
	var errs ValidationErrors

	if draft.PartyLedgerID == "" {
		errs = append(errs, ValidationError{
			Rule:        RuleParty,
			Description: "a party ledger must be selected",
		})
	} else if ledgers != nil && !ledgers.Exists(draft.PartyLedgerID) {
		errs = append(errs, ValidationError{
			Rule:        RuleParty,
			Description: fmt.Sprintf("unknown party ledger %s", draft.PartyLedgerID),
		})
	}

	if len(draft.Items) == 0 {
		errs = append(errs, ValidationError{
			Rule:        RuleItems,
			Description: "at least one line item is required",
		})
	}

	subTotal := decimal.Zero
	taxTotal := decimal.Zero
	for i, it := range draft.Items {
		amount := it.Qty.Mul(it.Rate)
		if !amount.IsPositive() {
			errs = append(errs, ValidationError{
				Rule:        RuleItems,
				Description: fmt.Sprintf("line %d amount must be greater than zero", i+1),
			})
			continue
		}
		taxAmount, err := tax.Amount(amount, it.TaxRate)
		if err != nil {
			errs = append(errs, ValidationError{
				Rule:        RuleTaxRate,
				Description: fmt.Sprintf("line %d: %v", i+1, err),
			})
			continue
		}
		subTotal = subTotal.Add(amount)
		taxTotal = taxTotal.Add(taxAmount)
	}

	grandTotal := subTotal.Add(taxTotal).Add(model.SignedAdjustmentTotal(draft.Adjustments))
	if len(errs) == 0 && !grandTotal.IsPositive() {
		errs = append(errs, ValidationError{
			Rule:        RuleTotal,
			Description: fmt.Sprintf("grand total %s must be greater than zero", grandTotal.StringFixed(2)),
		})
	}

	return errs
}
