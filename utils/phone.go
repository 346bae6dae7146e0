package utils

import (
	"strings"
)

// FormatPhone applies the Brazilian contact mask: non-digits are stripped,
// digits capped at 11, then rendered progressively as (DD) DDDDD-DDDD.
// The formatted string is what gets persisted, not the raw digits.
func FormatPhone(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	val := digits.String()
	if len(val) > 11 {
		val = val[:11]
	}
	if val == "" {
		return ""
	}

	formatted := "(" + val[:min(2, len(val))]
	if len(val) > 2 {
		formatted += ") " + val[2:min(7, len(val))]
	}
	if len(val) > 7 {
		formatted += "-" + val[7:]
	}
	return formatted
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
