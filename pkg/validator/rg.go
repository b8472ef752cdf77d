package validator

import (
	"fmt"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

// ValidateRG checks a Brazilian identity card number (RG).
//
// RG formats vary by issuing state and carry no national checksum, so
// the check is structural: after stripping formatting, between 7 and 9
// digits are required. Valid numbers normalize to the bare digits,
// with the digit count in Metadata under "length".
func ValidateRG(value string) Result {
	digits := sanitizer.OnlyDigits(value)

	if len(digits) < 7 || len(digits) > 9 {
		return invalid(CodeInvalidLength, fmt.Sprintf("must contain between 7 and 9 digits, got %d", len(digits)))
	}

	return valid(digits, map[string]any{
		"length": len(digits),
	})
}
