package quotes

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validFields() ClientFields {
	return ClientFields{
		Name:         "Jane Doe",
		Email:        "jane@x.com",
		Phone:        "123",
		Address:      "1 Main St",
		ValidityDays: 14,
	}
}

func bricklayingLine() ServiceLine {
	return ServiceLine{
		Description: "Bricklaying",
		Unit:        "m²",
		Quantity:    decimal.NewFromInt(10),
		UnitPrice:   decimal.NewFromInt(5),
	}
}

func TestValidateClientAllPresent(t *testing.T) {
	if issues := ValidateClient(validFields()); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidateClientMissingFields(t *testing.T) {
	issues := ValidateClient(ClientFields{ValidityDays: 14})

	want := []string{
		"Client name is required",
		"Email address is required",
		"Phone number is required",
		"Client address is required",
	}
	if len(issues) != len(want) {
		t.Fatalf("expected %d issues, got %v", len(want), issues)
	}
	for i, msg := range want {
		if issues[i] != msg {
			t.Fatalf("issue %d: expected %q got %q", i, msg, issues[i])
		}
	}
}

func TestValidateClientWhitespaceOnly(t *testing.T) {
	fields := validFields()
	fields.Name = "   "

	issues := ValidateClient(fields)
	if len(issues) != 1 || issues[0] != "Client name is required" {
		t.Fatalf("expected name issue, got %v", issues)
	}
}

func TestValidateClientEmailShape(t *testing.T) {
	cases := map[string]bool{
		"jane@x.com":      true,
		"j.doe@sub.co.zw": true,
		"jane@x":          false,
		"jane x@y.com":    false,
		"jane@@x.com":     false,
		"@x.com":          false,
		"jane@.":          false,
	}
	for email, ok := range cases {
		fields := validFields()
		fields.Email = email
		issues := ValidateClient(fields)
		if ok && len(issues) != 0 {
			t.Fatalf("%q: expected valid, got %v", email, issues)
		}
		if !ok {
			if len(issues) != 1 || issues[0] != "Please enter a valid email address" {
				t.Fatalf("%q: expected email issue, got %v", email, issues)
			}
		}
	}
}

func TestValidateClientValidityRange(t *testing.T) {
	for _, days := range []int{-1, 0, 366} {
		fields := validFields()
		fields.ValidityDays = days
		issues := ValidateClient(fields)
		if len(issues) != 1 || issues[0] != "Validity days must be between 1 and 365" {
			t.Fatalf("days=%d: expected range issue, got %v", days, issues)
		}
	}
	for _, days := range []int{1, 14, 365} {
		fields := validFields()
		fields.ValidityDays = days
		if issues := ValidateClient(fields); len(issues) != 0 {
			t.Fatalf("days=%d: expected no issues, got %v", days, issues)
		}
	}
}

func TestValidateServicesEmptyAfterFiltering(t *testing.T) {
	lines := []ServiceLine{
		{Description: "  ", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		{Description: "Roofing", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)},
		{Description: "Roofing", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero},
	}

	issues := ValidateServices(lines)
	if len(issues) != 1 {
		t.Fatalf("expected one aggregate issue, got %v", issues)
	}
	if issues[0] != "Please add at least one valid service with description, quantity, and unit price" {
		t.Fatalf("unexpected message %q", issues[0])
	}
}

func TestValidateServicesOneValidLineSuffices(t *testing.T) {
	lines := []ServiceLine{
		{Description: "", Quantity: decimal.Zero, UnitPrice: decimal.Zero},
		bricklayingLine(),
	}
	if issues := ValidateServices(lines); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidateSubmissionAggregates(t *testing.T) {
	issues := ValidateSubmission(ClientFields{ValidityDays: 14}, nil)
	if len(issues) != 5 {
		t.Fatalf("expected 5 issues, got %v", issues)
	}
}
