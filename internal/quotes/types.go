package quotes

import "github.com/shopspring/decimal"

// DefaultValidityDays is applied when a submission omits validity_days.
const DefaultValidityDays = 14

// MaxServiceLines caps how many rows the form may submit at once.
const MaxServiceLines = 20

// ClientFields carries the raw client-facing form fields of a submission.
type ClientFields struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	ValidityDays int
	Terms        string
}

// ServiceLine is one priced work item as entered on the form. Rows are
// created and edited freely client-side, so any field may be empty or zero.
type ServiceLine struct {
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// LineTotal returns quantity times unit price for this row.
func (s ServiceLine) LineTotal() decimal.Decimal {
	return s.Quantity.Mul(s.UnitPrice)
}

// Submission is the validated intent to create a quote: client fields plus
// the service lines that survived filtering.
type Submission struct {
	Client   ClientFields
	Services []ServiceLine
}
