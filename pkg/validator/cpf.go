package validator

import (
	"fmt"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

// cpfFiscalRegions maps the ninth CPF digit to the states of the
// Receita Federal fiscal region that issued the number.
var cpfFiscalRegions = [10]string{
	0: "RS",
	1: "DF, GO, MS, MT, TO",
	2: "AC, AM, AP, PA, RO, RR",
	3: "CE, MA, PI",
	4: "AL, PB, PE, RN",
	5: "BA, SE",
	6: "MG",
	7: "ES, RJ",
	8: "SP",
	9: "PR, SC",
}

// ValidateCPF checks a Brazilian individual taxpayer number (CPF).
//
// Formatting characters are stripped before checking, so masked and
// bare inputs are equivalent. The check verifies digit count, rejects
// the repeated-digit sequences the checksum would otherwise accept,
// and recomputes both verification digits. Valid numbers normalize to
// the standard 000.000.000-00 mask, with the issuing fiscal region in
// Metadata under "region".
func ValidateCPF(value string) Result {
	digits := sanitizer.OnlyDigits(value)

	if len(digits) != 11 {
		return invalid(CodeInvalidLength, fmt.Sprintf("must contain exactly 11 digits, got %d", len(digits)))
	}
	if sanitizer.IsRepeatedSequence(digits, 11) {
		return invalid(CodeRepeatedSequence, "must not be a single repeated digit")
	}
	if cpfCheckDigit(digits, 9) != int(digits[9]-'0') || cpfCheckDigit(digits, 10) != int(digits[10]-'0') {
		return invalid(CodeInvalidCheckDigit, "verification digits do not match")
	}

	return valid(sanitizer.FormatCPF(digits), map[string]any{
		"region": cpfFiscalRegions[digits[8]-'0'],
	})
}

// cpfCheckDigit computes the CPF verification digit over the first n
// digits, weighting positions n+1 down to 2. Results of 10 fold to 0.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := sum * 10 % 11
	if d >= 10 {
		d = 0
	}
	return d
}
