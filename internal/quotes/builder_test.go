package quotes

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeGrandTotalSumsEveryLine(t *testing.T) {
	lines := []ServiceLine{
		{Description: "Bricklaying", Unit: "m²", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(5)},
		{Description: "Plastering", Unit: "m²", Quantity: decimal.NewFromFloat(2.5), UnitPrice: decimal.NewFromInt(4)},
		// Partially filled rows contribute their zero product.
		{Description: "Roofing", Unit: "m²", Quantity: decimal.NewFromInt(3)},
		{},
	}

	total := ComputeGrandTotal(lines)
	if !total.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected 60 got %s", total)
	}
}

func TestComputeGrandTotalEmpty(t *testing.T) {
	if total := ComputeGrandTotal(nil); !total.IsZero() {
		t.Fatalf("expected zero got %s", total)
	}
}

func TestSubmissionTotalSkipsInvalidLines(t *testing.T) {
	lines := []ServiceLine{
		bricklayingLine(),
		{Description: "Roofing", Unit: "m²", Quantity: decimal.NewFromInt(3)},
	}

	display := ComputeGrandTotal(lines)
	authoritative := SubmissionTotal(lines)

	if !display.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected display total 50 got %s", display)
	}
	if !authoritative.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected submission total 50 got %s", authoritative)
	}
}

func TestValidLinesFiltering(t *testing.T) {
	lines := []ServiceLine{
		{Description: "", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		{Description: "  ", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		{Description: "Roofing", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)},
		{Description: "Roofing", Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(1)},
		{Description: "Roofing", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero},
		bricklayingLine(),
	}

	valid := ValidLines(lines)
	if len(valid) != 1 {
		t.Fatalf("expected 1 valid line got %d", len(valid))
	}
	if valid[0].Description != "Bricklaying" {
		t.Fatalf("unexpected surviving line %+v", valid[0])
	}
}

func TestBuildSubmissionDefaultsAndFilters(t *testing.T) {
	fields := validFields()
	fields.ValidityDays = 0
	fields.Terms = ""

	sub := BuildSubmission(fields, []ServiceLine{
		bricklayingLine(),
		{Description: "Roofing"},
	})

	if sub.Client.ValidityDays != DefaultValidityDays {
		t.Fatalf("expected default validity %d got %d", DefaultValidityDays, sub.Client.ValidityDays)
	}
	if len(sub.Services) != 1 {
		t.Fatalf("expected 1 service got %d", len(sub.Services))
	}
	if sub.Client.Terms != "" {
		t.Fatalf("expected empty terms got %q", sub.Client.Terms)
	}
}

func TestLineTotal(t *testing.T) {
	line := ServiceLine{Quantity: decimal.NewFromFloat(2.5), UnitPrice: decimal.NewFromFloat(4.2)}
	if !line.LineTotal().Equal(decimal.NewFromFloat(10.5)) {
		t.Fatalf("expected 10.5 got %s", line.LineTotal())
	}
}
