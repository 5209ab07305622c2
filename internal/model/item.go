package model

import "github.com/shopspring/decimal"

// Item represents a row in items.json (stock item master).
type Item struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	Rate    decimal.Decimal `json:"rate"`    // default sale rate
	TaxRate decimal.Decimal `json:"taxRate"` // default GST percentage
	HSNCode string          `json:"hsnCode,omitempty"`
}
