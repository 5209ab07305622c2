package vouchers

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// Query filters the posted collection. Zero-value fields match everything.
type Query struct {
	From *time.Time
	To   *time.Time

	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal

	// Text matches case-insensitively against party and voucher ID.
	Text string

	Type model.VoucherType
}

// Find returns the posted vouchers matching a query, in posting order. The
// result is a fresh slice; the stored collection is never mutated.
func (s *Service) Find(q Query) []model.Voucher {
	var result []model.Voucher
	text := strings.ToLower(q.Text)

	for _, v := range s.vouchers {
		if q.Type != "" && v.Type != q.Type {
			continue
		}
		if q.From != nil && v.Date.Before(*q.From) {
			continue
		}
		if q.To != nil && v.Date.After(*q.To) {
			continue
		}
		if q.MinAmount != nil && v.Amount.LessThan(*q.MinAmount) {
			continue
		}
		if q.MaxAmount != nil && v.Amount.GreaterThan(*q.MaxAmount) {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(v.Party), text) &&
			!strings.Contains(strings.ToLower(v.ID), text) {
			continue
		}
		result = append(result, v)
	}
	return result
}
