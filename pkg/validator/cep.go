package validator

import (
	"fmt"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

// cepRegions maps the first CEP digit to the postal routing region the
// Correios assign it to.
var cepRegions = [10]string{
	0: "São Paulo, Região Metropolitana",
	1: "São Paulo, Interior e Litoral",
	2: "Rio de Janeiro e Espírito Santo",
	3: "Minas Gerais",
	4: "Bahia e Sergipe",
	5: "Pernambuco, Alagoas, Paraíba e Rio Grande do Norte",
	6: "Ceará, Piauí, Maranhão, Pará, Amazonas, Acre, Amapá e Roraima",
	7: "Distrito Federal, Goiás, Tocantins, Mato Grosso, Mato Grosso do Sul e Rondônia",
	8: "Paraná e Santa Catarina",
	9: "Rio Grande do Sul",
}

// ValidateCEP checks a Brazilian postal code (CEP).
//
// Formatting characters are stripped and exactly 8 digits are
// required. CEPs carry no check digit, so the check is structural.
// Valid codes normalize to the 00000-000 mask, with the postal routing
// region in Metadata under "region".
func ValidateCEP(value string) Result {
	digits := sanitizer.OnlyDigits(value)

	if len(digits) != 8 {
		return invalid(CodeInvalidLength, fmt.Sprintf("must contain exactly 8 digits, got %d", len(digits)))
	}

	return valid(sanitizer.FormatCEP(digits), map[string]any{
		"region": cepRegions[digits[0]-'0'],
	})
}
