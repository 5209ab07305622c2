package importer

import (
	"time"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// matchWindow is how far a voucher date may sit from the statement date and
// still count as the same movement.
const matchWindow = 5 * 24 * time.Hour

// Match pairs a statement row with an uncleared voucher it most likely
// clears.
type Match struct {
	Row     model.BankStatementRow
	Voucher model.Voucher
}

// rowMatchesVoucher compares a statement row against a voucher: a withdrawal
// matches a Payment of the same magnitude, a deposit matches a Receipt or
// Contra, and the dates must fall within the match window.
func rowMatchesVoucher(row model.BankStatementRow, v model.Voucher) bool {
	if row.Amount.IsNegative() {
		if v.Type != model.TypePayment {
			return false
		}
		if !row.Amount.Neg().Equal(v.Amount) {
			return false
		}
	} else {
		if v.Type != model.TypeReceipt && v.Type != model.TypeContra {
			return false
		}
		if !row.Amount.Equal(v.Amount) {
			return false
		}
	}

	gap := row.Date.Sub(v.Date)
	if gap < 0 {
		gap = -gap
	}
	return gap <= matchWindow
}

// SuggestMatches pairs statement rows with uncleared bank-affecting vouchers
// touching the target ledger. Each voucher is consumed by at most one row;
// the caller confirms matches before any clearing happens.
func SuggestMatches(rows []model.BankStatementRow, targetLedgerID string, vouchers []model.Voucher) []Match {
	taken := make(map[string]bool)
	var matches []Match

	for _, row := range rows {
		for _, v := range vouchers {
			if v.IsReconciled || taken[v.ID] {
				continue
			}
			if !v.TouchesLedger(targetLedgerID) {
				continue
			}
			if !rowMatchesVoucher(row, v) {
				continue
			}
			taken[v.ID] = true
			matches = append(matches, Match{Row: row, Voucher: v})
			break
		}
	}
	return matches
}
