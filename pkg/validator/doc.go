// Package validator implements validation, normalization, and type
// detection for Brazilian personal data: CPF, CNPJ, email addresses,
// passwords, Brazilian phone numbers, CEP postal codes, RG identifiers,
// and personal names.
//
// Every check returns a Result rather than an error. A Result reports
// whether the input is valid, the canonical formatting of the value,
// human-readable problem descriptions, a stable machine-readable error
// code, and type-specific metadata such as the CPF fiscal region or the
// phone area code state. Callers branch on Result.Valid instead of
// comparing errors:
//
//	res := validator.ValidateCPF("111.444.777-35")
//	if !res.Valid {
//		log.Printf("rejected: %s (%s)", res.Errors[0], res.ErrorCode)
//		return
//	}
//	store(res.Normalized) // "111.444.777-35"
//
// # Validators
//
// Each supported type has a dedicated function: ValidateCPF,
// ValidateCNPJ, ValidateEmail, ValidatePassword, ValidatePhoneBR,
// ValidateCEP, ValidateRG, and ValidateName. All of them accept raw
// user input and perform their own cleanup, so "111.444.777-35",
// "11144477735", and " 111 444 777 35 " produce the same outcome.
//
// Validate dispatches on a Type tag, which is how callers handle
// values whose type is chosen at runtime:
//
//	res := validator.Validate(validator.TypeEmail, input, nil)
//
// # Detection
//
// Detect identifies which supported type a raw string is, trying
// validators from the most structurally distinctive type to the most
// permissive and returning the first match:
//
//	typ := validator.Detect("01310-100") // TypeCEP
//
// Strings that no validator accepts yield TypeNone.
//
// # Batch
//
// ValidateBatch validates independent items concurrently and returns
// results in input order, one per item:
//
//	results := validator.ValidateBatch(items)
//
// # Passwords
//
// Password checks are driven by a PasswordPolicy. DefaultPasswordPolicy
// returns the standard policy (8 to 128 characters, all character
// classes required, common passwords forbidden). Valid passwords
// normalize to the fixed PasswordMask token so that Result values can
// be logged or returned to clients without leaking the secret.
//
// All functions are stateless and safe for concurrent use.
package validator
