package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// NISN (national student number) - 10 digits
	NISNPattern = `^\d{10}$`

	// NIK (national ID number) - 16 digits
	NIKPattern = `^\d{16}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 150
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	NISN  *regexp.Regexp
	NIK   *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	NISN:  regexp.MustCompile(NISNPattern),
	NIK:   regexp.MustCompile(NIKPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(value)))
}

// IsValidName reports whether the value is a usable display name after trimming.
func IsValidName(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}

// StripTextMarker removes the leading apostrophe spreadsheet programs use to
// force a numeric-looking cell to text. The remainder is returned unchanged.
func StripTextMarker(value string) string {
	return strings.TrimPrefix(value, "'")
}
