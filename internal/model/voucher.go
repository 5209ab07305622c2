package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType identifies the statutory document type a voucher records.
type VoucherType string

const (
	TypeSales          VoucherType = "Sales"
	TypePurchase       VoucherType = "Purchase"
	TypeSalesReturn    VoucherType = "Sales Return"
	TypePurchaseReturn VoucherType = "Purchase Return"
	TypePayment        VoucherType = "Payment"
	TypeReceipt        VoucherType = "Receipt"
	TypeContra         VoucherType = "Contra"
	TypeJournal        VoucherType = "Journal"
)

// VoucherStatus represents the lifecycle state of a voucher.
type VoucherStatus string

const (
	StatusDraft     VoucherStatus = "Draft"
	StatusPosted    VoucherStatus = "Posted"
	StatusCancelled VoucherStatus = "Cancelled"
)

// EntryMode is the explicit discriminant between the two voucher payloads:
// raw debit/credit legs versus quantified line items.
type EntryMode string

const (
	ModeLedger   EntryMode = "ledger"
	ModeItemized EntryMode = "itemized"
)

// LedgerEntry is one side of a double-entry posting (ledger mode).
type LedgerEntry struct {
	LedgerID string          `json:"ledgerId"`
	Side     BalanceSide     `json:"side"`
	Amount   decimal.Decimal `json:"amount"`
}

// LineItem is one quantified row of an itemized voucher. Amount and the tax
// fields are derived at posting time, never supplied by the caller.
type LineItem struct {
	ItemID    string          `json:"itemId"`
	Qty       decimal.Decimal `json:"qty"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	CGSTRate  decimal.Decimal `json:"cgstRate"`
	SGSTRate  decimal.Decimal `json:"sgstRate"`
	IGSTRate  decimal.Decimal `json:"igstRate"`
}

// AdjustmentKind marks a post-subtotal charge as additive or subtractive.
type AdjustmentKind string

const (
	AdjustAdd  AdjustmentKind = "Add"
	AdjustLess AdjustmentKind = "Less"
)

// Adjustment is a charge applied after the line-item subtotal, outside tax
// computation (freight, rounding off, trade discount).
type Adjustment struct {
	Label  string          `json:"label"`
	Kind   AdjustmentKind  `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// Signed returns the adjustment amount with its kind applied.
func (a Adjustment) Signed() decimal.Decimal {
	if a.Kind == AdjustLess {
		return a.Amount.Neg()
	}
	return a.Amount
}

// SignedAdjustmentTotal sums adjustments with Add positive and Less negative.
func SignedAdjustmentTotal(adjs []Adjustment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range adjs {
		total = total.Add(a.Signed())
	}
	return total
}

// Voucher is a posted document in vouchers.json. ID, type, and all financial
// fields are frozen once posted; only the reconciliation fields (IsReconciled,
// BankDate) may change afterwards.
type Voucher struct {
	ID     string        `json:"id"`
	Type   VoucherType   `json:"type"`
	Date   time.Time     `json:"date"`
	Party  string        `json:"party"`
	Status VoucherStatus `json:"status"`
	Mode   EntryMode     `json:"mode"`

	Entries     []LedgerEntry `json:"entries,omitempty"`
	Items       []LineItem    `json:"items,omitempty"`
	Adjustments []Adjustment  `json:"adjustments,omitempty"`

	PartyLedgerID     string            `json:"partyLedgerId,omitempty"`
	SubTotal          decimal.Decimal   `json:"subTotal"`
	TaxTotal          decimal.Decimal   `json:"taxTotal"`
	Amount            decimal.Decimal   `json:"amount"`
	Jurisdiction      Jurisdiction      `json:"jurisdiction,omitempty"`
	GSTClassification TaxClassification `json:"gstClassification,omitempty"`

	IsReconciled bool   `json:"isReconciled"`
	BankDate     string `json:"bankDate,omitempty"` // "2006-01-02", empty = not cleared

	Narration string `json:"narration,omitempty"`
}

// TouchesLedger reports whether the voucher references the given ledger,
// either as its party ledger or through a ledger-mode entry.
func (v Voucher) TouchesLedger(ledgerID string) bool {
	if v.PartyLedgerID == ledgerID {
		return true
	}
	for _, e := range v.Entries {
		if e.LedgerID == ledgerID {
			return true
		}
	}
	return false
}

// VoucherDraft is an unposted voucher as collected from an entry form. Line
// item amounts and tax fields are recomputed at posting time; any values the
// form pre-filled are ignored.
type VoucherDraft struct {
	Type  VoucherType `json:"type"`
	Date  time.Time   `json:"date"`
	Party string      `json:"party"`
	Mode  EntryMode   `json:"mode"`

	Entries     []LedgerEntry `json:"entries,omitempty"`
	Items       []LineItem    `json:"items,omitempty"`
	Adjustments []Adjustment  `json:"adjustments,omitempty"`

	PartyLedgerID     string            `json:"partyLedgerId,omitempty"`
	Jurisdiction      Jurisdiction      `json:"jurisdiction,omitempty"`
	GSTClassification TaxClassification `json:"gstClassification,omitempty"`

	Narration string `json:"narration,omitempty"`
}
