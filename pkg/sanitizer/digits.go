package sanitizer

import "strings"

// OnlyDigits strips every character that is not a decimal digit (0-9).
// Empty input yields an empty string. The function is idempotent:
// OnlyDigits(OnlyDigits(s)) == OnlyDigits(s).
func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// IsRepeatedSequence reports whether digits consists of a single digit
// repeated at least minLen times. Degenerate runs like "00000000000" satisfy
// checksum math trivially and must be rejected by the document validators.
func IsRepeatedSequence(digits string, minLen int) bool {
	if minLen < 1 || len(digits) < minLen {
		return false
	}
	first := digits[0]
	for i := 1; i < len(digits); i++ {
		if digits[i] != first {
			return false
		}
	}
	return true
}
