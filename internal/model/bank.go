package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankStatementRow represents one parsed row of a bank-statement CSV, used
// when matching posted vouchers against the bank during reconciliation.
type BankStatementRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = withdrawal, positive = deposit
	Reference   string
}
