package validator

import (
	"fmt"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCNPJ checks a Brazilian company taxpayer number (CNPJ).
//
// Formatting characters are stripped before checking. The check
// verifies digit count, rejects repeated-digit sequences, and
// recomputes both verification digits using the CNPJ weight tables.
// Valid numbers normalize to the standard 00.000.000/0000-00 mask.
// Metadata carries the two-digit registration prefix under "prefix",
// the 4-digit establishment number under "branch", and "headquarters"
// reporting whether the establishment is 0001.
func ValidateCNPJ(value string) Result {
	digits := sanitizer.OnlyDigits(value)

	if len(digits) != 14 {
		return invalid(CodeInvalidLength, fmt.Sprintf("must contain exactly 14 digits, got %d", len(digits)))
	}
	if sanitizer.IsRepeatedSequence(digits, 14) {
		return invalid(CodeRepeatedSequence, "must not be a single repeated digit")
	}
	if cnpjCheckDigit(digits, cnpjFirstWeights) != int(digits[12]-'0') ||
		cnpjCheckDigit(digits, cnpjSecondWeights) != int(digits[13]-'0') {
		return invalid(CodeInvalidCheckDigit, "verification digits do not match")
	}

	branch := digits[8:12]
	return valid(sanitizer.FormatCNPJ(digits), map[string]any{
		"prefix":       digits[:2],
		"branch":       branch,
		"headquarters": branch == "0001",
	})
}

// cnpjCheckDigit computes a CNPJ verification digit by weighting the
// leading digits with the given table. Remainders below 2 fold to 0.
func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
