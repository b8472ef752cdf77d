package sanitizer

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseWhitespace normalizes whitespace by replacing runs of consecutive
// whitespace characters with a single space and trimming the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// HasEdgeWhitespace reports whether the string carries leading or trailing
// whitespace. Unlike Trim it preserves the input, which matters for values
// (passwords) that must never be altered before inspection.
func HasEdgeWhitespace(s string) bool {
	return s != strings.TrimSpace(s)
}
