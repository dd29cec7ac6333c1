package contact

import (
	"strings"
	"unicode"

	sberrors "github.com/Iron-Ham/sheetbook/internal/errors"
)

// phoneDigits is the required length of a cleaned phone number.
const phoneDigits = 10

// CleanPhone strips every non-digit character from the input. The result is
// returned regardless of length; use ValidatePhone to enforce the length
// requirement.
func CleanPhone(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone reports whether a cleaned phone number is acceptable.
// Only a string of exactly 10 digits passes. Callers must not contact the
// store when validation fails.
func ValidatePhone(cleaned string) error {
	if len(cleaned) != phoneDigits {
		return sberrors.NewValidationError("phone", "must be exactly 10 digits")
	}
	return nil
}

// FormatPhone renders a 10-digit phone number as XXX-XXX-XXXX for display.
// Anything that is not exactly 10 characters is returned unchanged; this is
// a fallback for unvalidated data already in the sheet, not a second
// validation path.
func FormatPhone(phone string) string {
	if len(phone) != phoneDigits {
		return phone
	}
	return phone[:3] + "-" + phone[3:6] + "-" + phone[6:]
}
