package model

import "github.com/shopspring/decimal"

// TaxComponent names the statutory GST component a tax master represents.
type TaxComponent string

const (
	ComponentCGST  TaxComponent = "CGST"
	ComponentSGST  TaxComponent = "SGST"
	ComponentIGST  TaxComponent = "IGST"
	ComponentOther TaxComponent = "Other"
)

// TaxClassification separates tax collected on sales from tax paid on purchases.
type TaxClassification string

const (
	TaxInput  TaxClassification = "Input"
	TaxOutput TaxClassification = "Output"
)

// Jurisdiction controls how a GST rate splits into components: Local
// transactions split into CGST+SGST, Central transactions carry IGST.
type Jurisdiction string

const (
	JurisdictionLocal   Jurisdiction = "Local"
	JurisdictionCentral Jurisdiction = "Central"
)

// TaxMaster represents a row in tax-masters.json.
type TaxMaster struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Rate           decimal.Decimal   `json:"rate"` // percentage, 0-100
	Component      TaxComponent      `json:"component"`
	Classification TaxClassification `json:"classification"`
	Jurisdiction   Jurisdiction      `json:"jurisdiction"`
	GroupID        string            `json:"groupId,omitempty"`
}

// TaxGroup is a named set of tax masters. Aggregation only; it plays no
// arithmetic role.
type TaxGroup struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	TaxIDs []string `json:"taxIds"`
}
