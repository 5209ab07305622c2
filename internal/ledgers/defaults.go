package ledgers

import (
	"github.com/google/uuid"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// DefaultChart returns the starter chart of ledgers for a new GST-registered
// business.
func DefaultChart() []model.LedgerAccount {
	mk := func(name, group string, nature model.Nature, side model.BalanceSide) model.LedgerAccount {
		return model.LedgerAccount{
			ID:          uuid.NewString(),
			Name:        name,
			Group:       group,
			Nature:      nature,
			BalanceSide: side,
		}
	}
	return []model.LedgerAccount{
		mk("Cash", "Cash-in-Hand", model.NatureAssets, model.SideDebit),
		mk("Bank Account", "Bank Accounts", model.NatureAssets, model.SideDebit),
		mk("Sales Account", "Sales Accounts", model.NatureIncome, model.SideCredit),
		mk("Purchase Account", "Purchase Accounts", model.NatureExpenses, model.SideDebit),
		mk("Output CGST", "Duties & Taxes", model.NatureLiabilities, model.SideCredit),
		mk("Output SGST", "Duties & Taxes", model.NatureLiabilities, model.SideCredit),
		mk("Output IGST", "Duties & Taxes", model.NatureLiabilities, model.SideCredit),
		mk("Input CGST", "Duties & Taxes", model.NatureAssets, model.SideDebit),
		mk("Input SGST", "Duties & Taxes", model.NatureAssets, model.SideDebit),
		mk("Input IGST", "Duties & Taxes", model.NatureAssets, model.SideDebit),
		mk("Capital Account", "Capital Account", model.NatureLiabilities, model.SideCredit),
	}
}
