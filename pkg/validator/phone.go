package validator

import (
	"fmt"
	"strings"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

// areaCodeStates maps every assigned Brazilian DDD area code to its
// state. Codes absent from the map are not in service.
var areaCodeStates = map[string]string{
	"11": "SP", "12": "SP", "13": "SP", "14": "SP", "15": "SP",
	"16": "SP", "17": "SP", "18": "SP", "19": "SP",
	"21": "RJ", "22": "RJ", "24": "RJ",
	"27": "ES", "28": "ES",
	"31": "MG", "32": "MG", "33": "MG", "34": "MG", "35": "MG",
	"37": "MG", "38": "MG",
	"41": "PR", "42": "PR", "43": "PR", "44": "PR", "45": "PR", "46": "PR",
	"47": "SC", "48": "SC", "49": "SC",
	"51": "RS", "53": "RS", "54": "RS", "55": "RS",
	"61": "DF",
	"62": "GO", "64": "GO",
	"63": "TO",
	"65": "MT", "66": "MT",
	"67": "MS",
	"68": "AC",
	"69": "RO",
	"71": "BA", "73": "BA", "74": "BA", "75": "BA", "77": "BA",
	"79": "SE",
	"81": "PE", "87": "PE",
	"82": "AL",
	"83": "PB",
	"84": "RN",
	"85": "CE", "88": "CE",
	"86": "PI", "89": "PI",
	"91": "PA", "93": "PA", "94": "PA",
	"92": "AM", "97": "AM",
	"95": "RR",
	"96": "AP",
	"98": "MA", "99": "MA",
}

// ValidatePhoneBR checks a Brazilian phone number, landline or mobile.
//
// Formatting characters are stripped, and a leading 55 country code is
// dropped when the remaining digits still form a full number. Ten
// digits identify a landline, eleven a mobile, which must have 9 as
// the first subscriber digit. The area code must be an assigned DDD.
// Valid numbers normalize to the international +55 (DD) mask, with
// "subtype" (mobile or landline), "area_code", and "state" in
// Metadata.
func ValidatePhoneBR(value string) Result {
	digits := sanitizer.OnlyDigits(value)

	// A bare 10 or 11 digit number starting with 55 is a DDD 55 local
	// number, not a country-prefixed one, so the prefix is only dropped
	// when enough digits remain.
	if len(digits) >= 12 && strings.HasPrefix(digits, "55") {
		digits = digits[2:]
	}

	if len(digits) != 10 && len(digits) != 11 {
		return invalid(CodeInvalidLength, fmt.Sprintf("must contain 10 or 11 digits after the country code, got %d", len(digits)))
	}

	areaCode := digits[:2]
	state, assigned := areaCodeStates[areaCode]
	if !assigned {
		return invalid(CodeInvalidDDD, fmt.Sprintf("area code %s is not an assigned Brazilian DDD", areaCode))
	}

	subtype := "landline"
	if len(digits) == 11 {
		if digits[2] != '9' {
			return invalid(CodeInvalidCellFormat, "mobile numbers must have 9 as the first digit after the area code")
		}
		subtype = "mobile"
	}

	return valid(sanitizer.FormatPhoneBR(digits), map[string]any{
		"subtype":   subtype,
		"area_code": areaCode,
		"state":     state,
	})
}
