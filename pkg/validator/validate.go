package validator

import "fmt"

// Validate runs the validator for typ against value. A nil policy
// applies DefaultPasswordPolicy; the policy is ignored for every type
// but TypePassword. Unknown types produce an invalid Result with
// CodeUnsupportedType rather than an error, keeping the outcome shape
// uniform for dynamic callers.
func Validate(typ Type, value string, policy *PasswordPolicy) Result {
	switch typ {
	case TypeCPF:
		return ValidateCPF(value)
	case TypeCNPJ:
		return ValidateCNPJ(value)
	case TypeEmail:
		return ValidateEmail(value)
	case TypePassword:
		p := DefaultPasswordPolicy()
		if policy != nil {
			p = *policy
		}
		return ValidatePassword(value, p)
	case TypePhoneBR:
		return ValidatePhoneBR(value)
	case TypeCEP:
		return ValidateCEP(value)
	case TypeRG:
		return ValidateRG(value)
	case TypeName:
		return ValidateName(value)
	default:
		return invalid(CodeUnsupportedType, fmt.Sprintf("type %q is not supported", string(typ)))
	}
}
