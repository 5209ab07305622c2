package vouchers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// mockLedgers implements LedgerChecker for testing.
type mockLedgers struct {
	ids map[string]bool
}

func (m *mockLedgers) Exists(id string) bool {
	return m.ids[id]
}

func newMockLedgers(ids ...string) *mockLedgers {
	m := &mockLedgers{ids: make(map[string]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

var defaultLedgers = newMockLedgers("cash", "bank", "sales", "purchase", "acme")

func entry(ledgerID string, side model.BalanceSide, amount string) model.LedgerEntry {
	return model.LedgerEntry{LedgerID: ledgerID, Side: side, Amount: dec(amount)}
}

func ledgerDraft(entries ...model.LedgerEntry) model.VoucherDraft {
	return model.VoucherDraft{
		Type:    model.TypePayment,
		Date:    date(2023, 7, 14),
		Party:   "Acme Traders",
		Mode:    model.ModeLedger,
		Entries: entries,
	}
}

func itemizedDraft(items ...model.LineItem) model.VoucherDraft {
	return model.VoucherDraft{
		Type:          model.TypeSales,
		Date:          date(2023, 7, 14),
		Party:         "Acme Traders",
		Mode:          model.ModeItemized,
		PartyLedgerID: "acme",
		Jurisdiction:  model.JurisdictionLocal,
		Items:         items,
	}
}

func line(qty, rate, taxRate string) model.LineItem {
	return model.LineItem{ItemID: "item-1", Qty: dec(qty), Rate: dec(rate), TaxRate: dec(taxRate)}
}

func hasRule(errs ValidationErrors, rule string) bool {
	for _, e := range errs {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidate_BalancedLedgerDraft(t *testing.T) {
	draft := ledgerDraft(
		entry("purchase", model.SideDebit, "100.00"),
		entry("cash", model.SideCredit, "100.00"),
	)
	assert.Empty(t, Validate(draft, defaultLedgers))
}

func TestValidate_Unbalanced(t *testing.T) {
	draft := ledgerDraft(
		entry("purchase", model.SideDebit, "100.00"),
		entry("cash", model.SideCredit, "99.00"),
	)
	errs := Validate(draft, defaultLedgers)
	require.NotEmpty(t, errs)
	assert.True(t, hasRule(errs, RuleBalance))
	assert.Contains(t, errs.Error(), "do not balance")
}

func TestValidate_BalanceWithinTolerance(t *testing.T) {
	draft := ledgerDraft(
		entry("purchase", model.SideDebit, "100.005"),
		entry("cash", model.SideCredit, "100.00"),
	)
	assert.Empty(t, Validate(draft, defaultLedgers))
}

func TestValidate_TooFewEntries(t *testing.T) {
	draft := ledgerDraft(entry("cash", model.SideDebit, "100.00"))
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleEntries))
}

func TestValidate_EmptyLedgerRef(t *testing.T) {
	draft := ledgerDraft(
		entry("", model.SideDebit, "100.00"),
		entry("cash", model.SideCredit, "100.00"),
	)
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleLedgerRef))
}

func TestValidate_UnknownLedgerRef(t *testing.T) {
	draft := ledgerDraft(
		entry("missing", model.SideDebit, "100.00"),
		entry("cash", model.SideCredit, "100.00"),
	)
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleLedgerRef))
}

func TestValidate_NonPositiveEntryAmount(t *testing.T) {
	draft := ledgerDraft(
		entry("purchase", model.SideDebit, "0"),
		entry("cash", model.SideCredit, "0"),
	)
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleAmount))
	assert.True(t, hasRule(errs, RuleBalance), "zero debits also fail the positive-total rule")
}

func TestValidate_Itemized(t *testing.T) {
	draft := itemizedDraft(line("2", "500", "18"))
	assert.Empty(t, Validate(draft, defaultLedgers))
}

func TestValidate_Itemized_NoParty(t *testing.T) {
	draft := itemizedDraft(line("2", "500", "18"))
	draft.PartyLedgerID = ""
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleParty))
}

func TestValidate_Itemized_NoItems(t *testing.T) {
	draft := itemizedDraft()
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleItems))
}

func TestValidate_Itemized_ZeroAmountLine(t *testing.T) {
	draft := itemizedDraft(line("0", "500", "18"))
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleItems))
}

func TestValidate_Itemized_TaxRateOutOfRange(t *testing.T) {
	draft := itemizedDraft(line("1", "500", "120"))
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleTaxRate))
}

func TestValidate_Itemized_NonPositiveGrandTotal(t *testing.T) {
	draft := itemizedDraft(line("1", "100", "0"))
	draft.Adjustments = []model.Adjustment{
		{Label: "Trade Discount", Kind: model.AdjustLess, Amount: dec("100")},
	}
	errs := Validate(draft, defaultLedgers)
	assert.True(t, hasRule(errs, RuleTotal))
}

func TestValidate_UnknownMode(t *testing.T) {
	draft := model.VoucherDraft{Mode: model.EntryMode("hybrid")}
	errs := Validate(draft, defaultLedgers)
	require.Len(t, errs, 1)
	assert.Equal(t, RuleMode, errs[0].Rule)
}

func TestValidate_IsRepeatable(t *testing.T) {
	draft := itemizedDraft(line("2", "500", "18"))
	first := Validate(draft, defaultLedgers)
	second := Validate(draft, defaultLedgers)
	assert.Equal(t, first, second)
}
