package util

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^[0-9+\s-]+$`)

// IsValidPhone accepts digits with optional +, spaces, and hyphens.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// NormalizePhone strips whitespace and hyphens. Customers are keyed on the
// normalized form, so every write path must go through here first.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		switch r {
		case ' ', '\t', '-':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
