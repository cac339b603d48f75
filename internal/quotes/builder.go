package quotes

import (
	"strings"

	"github.com/shopspring/decimal"
)

// lineIsValid applies the service-row invariant: trimmed description
// present, quantity and unit price both positive.
func lineIsValid(line ServiceLine) bool {
	return strings.TrimSpace(line.Description) != "" &&
		line.Quantity.IsPositive() &&
		line.UnitPrice.IsPositive()
}

// ValidLines filters the rows down to the ones that may be submitted.
func ValidLines(lines []ServiceLine) []ServiceLine {
	valid := make([]ServiceLine, 0, len(lines))
	for _, line := range lines {
		if lineIsValid(line) {
			valid = append(valid, line)
		}
	}
	return valid
}

// BuildSubmission shapes the raw form input into the canonical submission:
// invalid rows are silently dropped and empty validity falls back to the
// default.
func BuildSubmission(fields ClientFields, lines []ServiceLine) Submission {
	if fields.ValidityDays == 0 {
		fields.ValidityDays = DefaultValidityDays
	}
	return Submission{
		Client:   fields,
		Services: ValidLines(lines),
	}
}

// ComputeGrandTotal sums quantity times unit price over every row,
// including partially filled ones whose zero fields contribute nothing.
// This is the optimistic live total the form displays while editing.
func ComputeGrandTotal(lines []ServiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// SubmissionTotal sums only the valid rows. This is the authoritative
// figure persisted with the quote; it can lag the displayed total when a
// row is only partially filled in.
func SubmissionTotal(lines []ServiceLine) decimal.Decimal {
	return ComputeGrandTotal(ValidLines(lines))
}
