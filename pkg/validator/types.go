package validator

import "github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"

// Type tags a supported data type. Tags appear verbatim in API
// requests and responses.
type Type string

const (
	TypeCPF      Type = "cpf"
	TypeCNPJ     Type = "cnpj"
	TypeEmail    Type = "email"
	TypePassword Type = "password"
	TypePhoneBR  Type = "phone-br"
	TypeCEP      Type = "cep"
	TypeRG       Type = "rg"
	TypeName     Type = "name"

	// TypeNone is returned by Detect when no validator accepts the
	// input. It is not a valid argument to Validate.
	TypeNone Type = "none"
)

// AllTypes lists every type Validate accepts, in detection priority
// order.
func AllTypes() []Type {
	out := make([]Type, len(detectionOrder))
	copy(out, detectionOrder)
	return out
}

// ParseType converts a wire string into a Type tag. Matching is
// case-insensitive and ignores surrounding whitespace. The second
// return value reports whether the tag is supported.
func ParseType(s string) (Type, bool) {
	switch Type(sanitizer.TrimToLower(s)) {
	case TypeCPF:
		return TypeCPF, true
	case TypeCNPJ:
		return TypeCNPJ, true
	case TypeEmail:
		return TypeEmail, true
	case TypePassword:
		return TypePassword, true
	case TypePhoneBR:
		return TypePhoneBR, true
	case TypeCEP:
		return TypeCEP, true
	case TypeRG:
		return TypeRG, true
	case TypeName:
		return TypeName, true
	default:
		return TypeNone, false
	}
}
