package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateHeight checks that a row or shelf height is a finite, non-negative number.
func ValidateHeight(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidRow, "%s must be a finite number, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidRow, "%s must be >= 0, got %v", name, v)
	}
	return nil
}

// ValidateBudget checks that a space budget is non-negative and not NaN.
// +Inf and math.MaxFloat64 are accepted as "unbounded".
func ValidateBudget(name string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidBudget, "%s must be a number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidBudget, "%s must be >= 0, got %v", name, v)
	}
	return nil
}

// ValidateFraction checks that a shade transition fraction lies in [0, 1].
func ValidateFraction(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return New(ErrCodeInvalidLockState, "fraction_to_shade must be in [0, 1], got %v", v)
	}
	return nil
}

// rowIDRegex matches row identifiers: a letter or digit followed by letters,
// digits, dots, dashes, underscores or colons.
var rowIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateRowID validates a row identifier used in scenario files.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - Maximum length of 128 characters
func ValidateRowID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidRow, "row id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidRow, "row id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRow, "row id %q contains invalid characters", id)
		}
	}
	if !rowIDRegex.MatchString(id) {
		return New(ErrCodeInvalidRow, "invalid row id: %q", id)
	}
	return nil
}

// ValidateFilename validates a scenario filename extension.
// Only .toml and .json documents are understood.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "filename cannot be empty")
	}
	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".toml") && !strings.HasSuffix(lower, ".json") {
		return New(ErrCodeInvalidFormat, "unsupported file type %q (want .toml or .json)", filename)
	}
	return nil
}
