// Package recon computes book-versus-bank balances for a ledger from the
// posted voucher collection. Clearing state lives on the vouchers themselves
// (vouchers.Service.MarkCleared); this package only derives views.
package recon

import (
	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// Balances is the reconciliation view over a target ledger.
type Balances struct {
	BookBalance decimal.Decimal
	BankBalance decimal.Decimal
}

// Uncleared returns the gap between book and bank: the total of outstanding
// items not yet matched against a bank statement.
func (b Balances) Uncleared() decimal.Decimal {
	return b.BookBalance.Sub(b.BankBalance).Abs()
}

// bankAffecting reports whether a voucher type moves money through a bank or
// cash ledger.
func bankAffecting(t model.VoucherType) bool {
	switch t {
	case model.TypePayment, model.TypeReceipt, model.TypeContra:
		return true
	}
	return false
}

// signedAmount orients a voucher's amount relative to the target ledger:
// payments drain it, receipts and contra transfers feed it.
func signedAmount(v model.Voucher) decimal.Decimal {
	if v.Type == model.TypePayment {
		return v.Amount.Neg()
	}
	return v.Amount
}

// Reconcile walks every bank-affecting voucher touching the target ledger.
// Both balances start from the ledger's signed opening balance; the bank
// balance counts only vouchers already cleared against a statement, so the
// difference is exactly the uncleared total.
func Reconcile(target model.LedgerAccount, vouchers []model.Voucher) Balances {
	opening := target.SignedOpening()
	b := Balances{BookBalance: opening, BankBalance: opening}

	for _, v := range vouchers {
		if !bankAffecting(v.Type) || !v.TouchesLedger(target.ID) {
			continue
		}
		amount := signedAmount(v)
		b.BookBalance = b.BookBalance.Add(amount)
		if v.IsReconciled {
			b.BankBalance = b.BankBalance.Add(amount)
		}
	}
	return b
}
