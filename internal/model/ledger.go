package model

import "github.com/shopspring/decimal"

// BalanceSide indicates which side of the books a balance or entry sits on.
type BalanceSide string

const (
	SideDebit  BalanceSide = "Dr"
	SideCredit BalanceSide = "Cr"
)

// Nature classifies ledger accounts in the chart of ledgers.
type Nature string

const (
	NatureAssets      Nature = "Assets"
	NatureLiabilities Nature = "Liabilities"
	NatureIncome      Nature = "Income"
	NatureExpenses    Nature = "Expenses"
)

// LedgerAccount represents a row in ledgers.json. Identity is frozen at
// creation; vouchers reference ledgers by ID and never own them.
type LedgerAccount struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Group          string          `json:"group"`
	Nature         Nature          `json:"nature"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	BalanceSide    BalanceSide     `json:"balanceSide"`
}

// SignedOpening returns the opening balance signed by balance side
// (debit positive, credit negative).
func (a LedgerAccount) SignedOpening() decimal.Decimal {
	if a.BalanceSide == SideCredit {
		return a.OpeningBalance.Neg()
	}
	return a.OpeningBalance
}
