// Package vouchers implements the posting engine: draft validation, tax
// derivation, statutory numbering, and the append-only posted collection.
package vouchers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/numbering"
	"github.com/bizbooks-dev/bizbooks/internal/tax"
)

// Service owns the posted voucher collection for a fiscal year. It is a
// single-writer, in-process engine: every operation is synchronous and a
// posting is one atomic append.
type Service struct {
	vouchers     []model.Voucher
	byID         map[string]int
	ledgers      LedgerChecker
	fiscalYear   string
	jurisdiction model.Jurisdiction // applied to drafts that leave it empty
}

// NewService creates a posting engine over an existing collection. Drafts
// that leave the jurisdiction empty pick up defaultJurisdiction; an empty
// default means Local.
func NewService(existing []model.Voucher, ledgers LedgerChecker, fiscalYear string, defaultJurisdiction model.Jurisdiction) *Service {
	if defaultJurisdiction == "" {
		defaultJurisdiction = model.JurisdictionLocal
	}
	s := &Service{
		byID:         make(map[string]int, len(existing)),
		ledgers:      ledgers,
		fiscalYear:   fiscalYear,
		jurisdiction: defaultJurisdiction,
	}
	for _, v := range existing {
		s.byID[v.ID] = len(s.vouchers)
		s.vouchers = append(s.vouchers, v)
	}
	return s
}

// Post validates a draft, derives its financial totals and tax split, assigns
// the next voucher number from the current collection snapshot, and appends
// the posted voucher. The returned voucher's ID, type, and totals are frozen.
//
// The ID is re-derived here, immediately before commit, so a concurrent
// reimplementation can swap the collision check for a transactional insert
// without touching the numbering algorithm. A collision is retryable once.
func (s *Service) Post(draft model.VoucherDraft) (model.Voucher, error) {
	if verrs := Validate(draft, s.ledgers); len(verrs) > 0 {
		return model.Voucher{}, verrs
	}

	v, err := s.build(draft)
	if err != nil {
		return model.Voucher{}, err
	}

	id, err := numbering.NextID(draft.Type, s.fiscalYear, s.vouchers)
	if err != nil {
		return model.Voucher{}, fmt.Errorf("numbering voucher: %w", err)
	}
	if _, taken := s.byID[id]; taken {
		return model.Voucher{}, IDCollisionError{ID: id}
	}

	v.ID = id
	v.Status = model.StatusPosted
	s.byID[id] = len(s.vouchers)
	s.vouchers = append(s.vouchers, v)
	return v, nil
}

// build derives the computed fields of a voucher from a validated draft.
func (s *Service) build(draft model.VoucherDraft) (model.Voucher, error) {
	v := model.Voucher{
		Type:              draft.Type,
		Date:              draft.Date,
		Party:             draft.Party,
		Mode:              draft.Mode,
		PartyLedgerID:     draft.PartyLedgerID,
		Jurisdiction:      draft.Jurisdiction,
		GSTClassification: draft.GSTClassification,
		Narration:         draft.Narration,
	}

	switch draft.Mode {
	case model.ModeLedger:
		v.Entries = append([]model.LedgerEntry(nil), draft.Entries...)
		total := decimal.Zero
		for _, e := range draft.Entries {
			if e.Side == model.SideDebit {
				total = total.Add(e.Amount)
			}
		}
		v.Amount = total

	case model.ModeItemized:
		if v.Jurisdiction == "" {
			v.Jurisdiction = s.jurisdiction
		}
		if v.GSTClassification == "" {
			v.GSTClassification = defaultClassification(draft.Type)
		}

		subTotal := decimal.Zero
		taxTotal := decimal.Zero
		for _, it := range draft.Items {
			line := model.LineItem{
				ItemID:  it.ItemID,
				Qty:     it.Qty,
				Rate:    it.Rate,
				TaxRate: it.TaxRate,
			}
			line.Amount = it.Qty.Mul(it.Rate)

			amt, err := tax.Amount(line.Amount, it.TaxRate)
			if err != nil {
				return model.Voucher{}, err
			}
			line.TaxAmount = amt

			split, err := tax.SplitTax(it.TaxRate, v.Jurisdiction)
			if err != nil {
				return model.Voucher{}, err
			}
			line.CGSTRate = split.CGST
			line.SGSTRate = split.SGST
			line.IGSTRate = split.IGST

			subTotal = subTotal.Add(line.Amount)
			taxTotal = taxTotal.Add(line.TaxAmount)
			v.Items = append(v.Items, line)
		}

		v.Adjustments = append([]model.Adjustment(nil), draft.Adjustments...)
		v.SubTotal = subTotal
		v.TaxTotal = taxTotal
		v.Amount = subTotal.Add(taxTotal).Add(model.SignedAdjustmentTotal(draft.Adjustments))
	}

	return v, nil
}

func defaultClassification(t model.VoucherType) model.TaxClassification {
	switch t {
	case model.TypePurchase, model.TypePurchaseReturn:
		return model.TaxInput
	default:
		return model.TaxOutput
	}
}

// Patch carries a partial update to a posted voucher. Only the bank
// reconciliation date is mutable; every other field present here exists so
// a disallowed edit fails loudly instead of being silently dropped.
type Patch struct {
	BankDate *string

	Amount  *decimal.Decimal
	Type    *model.VoucherType
	Party   *string
	Date    *time.Time
	Entries []model.LedgerEntry
	Items   []model.LineItem
}

// Update applies a patch to a posted voucher. Patches touching frozen fields
// return an ImmutabilityError and leave the voucher untouched; corrections to
// posted amounts happen via compensating return vouchers.
func (s *Service) Update(voucherID string, p Patch) (model.Voucher, error) {
	idx, ok := s.byID[voucherID]
	if !ok {
		return model.Voucher{}, fmt.Errorf("voucher %s not found", voucherID)
	}

	if field := frozenField(p); field != "" {
		return model.Voucher{}, ImmutabilityError{VoucherID: voucherID, Field: field}
	}

	v := s.vouchers[idx]
	if p.BankDate != nil {
		v.BankDate = *p.BankDate
		// Reconciliation state is derived from the date, never set directly.
		v.IsReconciled = *p.BankDate != ""
	}
	s.vouchers[idx] = v
	return v, nil
}

func frozenField(p Patch) string {
	switch {
	case p.Amount != nil:
		return "amount"
	case p.Type != nil:
		return "type"
	case p.Party != nil:
		return "party"
	case p.Date != nil:
		return "date"
	case p.Entries != nil:
		return "entries"
	case p.Items != nil:
		return "items"
	}
	return ""
}

// MarkCleared records the bank statement date on a voucher. An empty date
// un-reconciles it.
func (s *Service) MarkCleared(voucherID, clearedDate string) (model.Voucher, error) {
	return s.Update(voucherID, Patch{BankDate: &clearedDate})
}

// Clone produces an unsaved draft pre-filled from an existing voucher. The
// stored collection is not touched; the draft's mode routes it to the right
// entry form.
func (s *Service) Clone(voucherID string) (model.VoucherDraft, error) {
	idx, ok := s.byID[voucherID]
	if !ok {
		return model.VoucherDraft{}, fmt.Errorf("voucher %s not found", voucherID)
	}
	v := s.vouchers[idx]

	draft := model.VoucherDraft{
		Type:              v.Type,
		Date:              v.Date,
		Party:             v.Party,
		Mode:              v.Mode,
		PartyLedgerID:     v.PartyLedgerID,
		Jurisdiction:      v.Jurisdiction,
		GSTClassification: v.GSTClassification,
		Narration:         v.Narration,
		Entries:           append([]model.LedgerEntry(nil), v.Entries...),
		Items:             append([]model.LineItem(nil), v.Items...),
		Adjustments:       append([]model.Adjustment(nil), v.Adjustments...),
	}
	return draft, nil
}

// Get returns a posted voucher by ID.
func (s *Service) Get(voucherID string) (model.Voucher, bool) {
	idx, ok := s.byID[voucherID]
	if !ok {
		return model.Voucher{}, false
	}
	return s.vouchers[idx], true
}

// All returns a copy of the posted collection, in posting order.
func (s *Service) All() []model.Voucher {
	return append([]model.Voucher(nil), s.vouchers...)
}
