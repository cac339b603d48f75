package webhook

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ServiceLine is one priced work item inside a quote payload.
type ServiceLine struct {
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// QuotePayload carries the quote fields the automation target consumes.
type QuotePayload struct {
	QuoteNumber   string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ClientAddress string
	ValidityDays  int
	Terms         string
	Services      []ServiceLine
}

// Flatten renders the payload in the automation target's trigger format:
// every value is a string and each service line is expanded into indexed
// scalar keys instead of a nested array. The n8n trigger matches on these
// exact keys, so the shape must not change.
func Flatten(p QuotePayload) map[string]string {
	flat := map[string]string{
		"client_name":    p.ClientName,
		"client_email":   p.ClientEmail,
		"client_phone":   p.ClientPhone,
		"client_address": p.ClientAddress,
		"validity_days":  strconv.Itoa(p.ValidityDays),
		"terms":          p.Terms,
		"quote_number":   p.QuoteNumber,
	}
	for i, svc := range p.Services {
		flat[fmt.Sprintf("services[%d].description", i)] = svc.Description
		flat[fmt.Sprintf("services[%d].unit", i)] = svc.Unit
		flat[fmt.Sprintf("services[%d].quantity", i)] = svc.Quantity.String()
		flat[fmt.Sprintf("services[%d].unit_price", i)] = svc.UnitPrice.String()
	}
	return flat
}
