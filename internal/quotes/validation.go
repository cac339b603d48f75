package quotes

import (
	"regexp"
	"strings"
)

// emailShape mirrors the form's check: non-whitespace segments around a
// single @ with at least one dot after it.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateClient checks the client contact fields and returns one
// human-readable message per failure. It never errors out early; the form
// renders the full list at once.
func ValidateClient(fields ClientFields) []string {
	var issues []string

	if strings.TrimSpace(fields.Name) == "" {
		issues = append(issues, "Client name is required")
	}

	email := strings.TrimSpace(fields.Email)
	if email == "" {
		issues = append(issues, "Email address is required")
	} else if !emailShape.MatchString(email) {
		issues = append(issues, "Please enter a valid email address")
	}

	if strings.TrimSpace(fields.Phone) == "" {
		issues = append(issues, "Phone number is required")
	}

	if strings.TrimSpace(fields.Address) == "" {
		issues = append(issues, "Client address is required")
	}

	if fields.ValidityDays < 1 || fields.ValidityDays > 365 {
		issues = append(issues, "Validity days must be between 1 and 365")
	}

	return issues
}

// ValidateServices checks that at least one valid service line exists.
// Invalid rows are not reported individually; they are simply excluded
// when the submission is built.
func ValidateServices(lines []ServiceLine) []string {
	if len(ValidLines(lines)) == 0 {
		return []string{"Please add at least one valid service with description, quantity, and unit price"}
	}
	return nil
}

// ValidateSubmission aggregates client and service validation.
func ValidateSubmission(fields ClientFields, lines []ServiceLine) []string {
	issues := ValidateClient(fields)
	issues = append(issues, ValidateServices(lines)...)
	return issues
}
