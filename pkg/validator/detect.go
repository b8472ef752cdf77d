package validator

// detectionOrder fixes the priority Detect tries validators in, from
// the most structurally distinctive type to the most permissive.
// Ambiguity resolves by position: an 11-digit string that is both a
// valid CPF and a well-formed mobile number classifies as phone-br
// because phone is attempted first. The order is part of the public
// contract; changing it reclassifies existing inputs.
var detectionOrder = []Type{
	TypePhoneBR,
	TypeCPF,
	TypeCNPJ,
	TypeCEP,
	TypeEmail,
	TypePassword,
	TypeRG,
	TypeName,
}

// Detect reports which supported type accepts value, trying each
// validator in detectionOrder and returning the first match. Password
// detection applies DefaultPasswordPolicy. When nothing matches,
// Detect returns TypeNone; that is a classification outcome, not an
// error. Detect is pure: equal inputs always classify equally.
func Detect(value string) Type {
	for _, typ := range detectionOrder {
		if Validate(typ, value, nil).Valid {
			return typ
		}
	}
	return TypeNone
}
