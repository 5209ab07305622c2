package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestAdjustmentSigned(t *testing.T) {
	add := Adjustment{Label: "Freight", Kind: AdjustAdd, Amount: dec("40")}
	less := Adjustment{Label: "Discount", Kind: AdjustLess, Amount: dec("25")}

	assert.True(t, add.Signed().Equal(dec("40")))
	assert.True(t, less.Signed().Equal(dec("-25")))
}

func TestSignedAdjustmentTotal(t *testing.T) {
	total := SignedAdjustmentTotal([]Adjustment{
		{Kind: AdjustAdd, Amount: dec("40")},
		{Kind: AdjustLess, Amount: dec("0.50")},
	})
	assert.True(t, total.Equal(dec("39.50")))

	assert.True(t, SignedAdjustmentTotal(nil).IsZero())
}

func TestTouchesLedger(t *testing.T) {
	v := Voucher{
		PartyLedgerID: "party-1",
		Entries: []LedgerEntry{
			{LedgerID: "bank-1", Side: SideCredit, Amount: dec("100")},
		},
	}

	assert.True(t, v.TouchesLedger("party-1"))
	assert.True(t, v.TouchesLedger("bank-1"))
	assert.False(t, v.TouchesLedger("cash-1"))
}

func TestSignedOpening(t *testing.T) {
	dr := LedgerAccount{OpeningBalance: dec("500"), BalanceSide: SideDebit}
	cr := LedgerAccount{OpeningBalance: dec("500"), BalanceSide: SideCredit}

	assert.True(t, dr.SignedOpening().Equal(dec("500")))
	assert.True(t, cr.SignedOpening().Equal(dec("-500")))
}
