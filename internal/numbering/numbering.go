// Package numbering generates statutory voucher numbers of the form
// "SL/23-24/00042": a type prefix, a fiscal-year token, and a zero-padded
// serial scoped to that type and year.
package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// GenericPrefix is used for voucher types with no registered prefix, so an
// unmapped type never blocks posting.
const GenericPrefix = "VCH"

const serialDigits = 5

var prefixes = map[model.VoucherType]string{
	model.TypeSales:          "SL",
	model.TypePurchase:       "PR",
	model.TypeSalesReturn:    "SR",
	model.TypePurchaseReturn: "PN",
	model.TypePayment:        "PY",
	model.TypeReceipt:        "RC",
	model.TypeContra:         "CN",
	model.TypeJournal:        "JR",
}

// Prefix returns the document prefix for a voucher type, falling back to
// GenericPrefix for unknown types.
func Prefix(t model.VoucherType) string {
	if p, ok := prefixes[t]; ok {
		return p
	}
	return GenericPrefix
}

// YearToken derives the two-digit-pair token from a fiscal year label.
// "2023 - 2024" -> "23-24". A bare "2023" assumes the following year.
func YearToken(fiscalYear string) (string, error) {
	compact := strings.ReplaceAll(fiscalYear, " ", "")
	parts := strings.SplitN(compact, "-", 2)

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid fiscal year %q: %w", fiscalYear, err)
	}

	end := start + 1
	if len(parts) == 2 {
		end, err = strconv.Atoi(parts[1])
		if err != nil {
			return "", fmt.Errorf("invalid fiscal year %q: %w", fiscalYear, err)
		}
		if end < 100 {
			// "2023-24" form.
			end += start / 100 * 100
		}
	}

	return fmt.Sprintf("%02d-%02d", start%100, end%100), nil
}

// FormatID assembles a voucher ID from its parts.
func FormatID(prefix, yearToken string, serial int) string {
	return fmt.Sprintf("%s/%s/%0*d", prefix, yearToken, serialDigits, serial)
}

// ParseSerial extracts the trailing numeric serial from a voucher ID.
// "SL/23-24/00042" -> 42.
func ParseSerial(id string) (int, error) {
	i := strings.LastIndex(id, "/")
	if i < 0 || i == len(id)-1 {
		return 0, fmt.Errorf("invalid voucher ID format: %q", id)
	}
	serial, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0, fmt.Errorf("invalid serial in voucher ID %q: %w", id, err)
	}
	return serial, nil
}

// NextID computes the next voucher ID for a type within a fiscal year by
// scanning the current collection for the highest matching serial. Counters
// are independent per (type, fiscal year). The caller must re-derive the ID
// from the latest snapshot immediately before committing and treat a
// collision as retryable; NextID itself never reserves anything.
func NextID(t model.VoucherType, fiscalYear string, existing []model.Voucher) (string, error) {
	token, err := YearToken(fiscalYear)
	if err != nil {
		return "", err
	}

	marker := "/" + token + "/"
	maxSerial := 0
	for _, v := range existing {
		if v.Type != t || !strings.Contains(v.ID, marker) {
			continue
		}
		serial, err := ParseSerial(v.ID)
		if err != nil {
			continue
		}
		if serial > maxSerial {
			maxSerial = serial
		}
	}

	return FormatID(Prefix(t), token, maxSerial+1), nil
}
