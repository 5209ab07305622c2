// Package importer parses bank-statement CSV exports and suggests which
// posted vouchers each statement row clears.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

const (
	dateFormat = "2006-01-02"
	numFields  = 4
	colDate    = 0
	colDesc    = 1
	colAmount  = 2
	colRef     = 3
)

// Header is the expected CSV header for a bank statement file.
const Header = "date,description,amount,reference"

// ParseStatement reads a bank-statement CSV (date, description, amount,
// reference) into statement rows. Withdrawals carry negative amounts.
func ParseStatement(r io.Reader) ([]model.BankStatementRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []model.BankStatementRow
	for i, rec := range records[1:] {
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) (model.BankStatementRow, error) {
	date, err := time.Parse(dateFormat, rec[colDate])
	if err != nil {
		return model.BankStatementRow{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return model.BankStatementRow{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	return model.BankStatementRow{
		Date:        date,
		Description: rec[colDesc],
		Amount:      amount,
		Reference:   rec[colRef],
	}, nil
}
