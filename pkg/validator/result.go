package validator

// ErrorCode is a stable machine-readable identifier for a validation
// failure. Codes are part of the public API: clients key translations
// and conditional handling on them, so existing values never change.
type ErrorCode string

const (
	// CodeInvalidLength reports a digit count or character count outside
	// the range the type allows.
	CodeInvalidLength ErrorCode = "INVALID_LENGTH"

	// CodeRepeatedSequence reports an identifier made of a single
	// repeated digit, such as "111.111.111-11". These pass the checksum
	// but are not issued.
	CodeRepeatedSequence ErrorCode = "REPEATED_SEQUENCE"

	// CodeInvalidCheckDigit reports CPF or CNPJ verification digits that
	// do not match the computed checksum.
	CodeInvalidCheckDigit ErrorCode = "INVALID_CHECK_DIGIT"

	// CodeMissingEmail reports an empty email input.
	CodeMissingEmail ErrorCode = "MISSING_EMAIL"

	// CodeEmailTooLong reports an email address over 254 characters.
	CodeEmailTooLong ErrorCode = "EMAIL_TOO_LONG"

	// CodeLocalPartTooLong reports an email local part over 64
	// characters.
	CodeLocalPartTooLong ErrorCode = "LOCAL_PART_TOO_LONG"

	// CodeInvalidFormat reports input whose shape does not match the
	// type, such as an email without a domain.
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// CodePasswordPolicyViolation reports a password that failed one or
	// more policy requirements. Result.Errors lists every violation.
	CodePasswordPolicyViolation ErrorCode = "PASSWORD_POLICY_VIOLATION"

	// CodeInvalidDDD reports a Brazilian phone area code that is not
	// assigned to any state.
	CodeInvalidDDD ErrorCode = "INVALID_DDD"

	// CodeInvalidCellFormat reports an 11-digit Brazilian phone number
	// whose subscriber part does not start with 9.
	CodeInvalidCellFormat ErrorCode = "INVALID_CELL_FORMAT"

	// CodeTooShort reports a name below the minimum length.
	CodeTooShort ErrorCode = "TOO_SHORT"

	// CodeTooLong reports a name above the maximum length.
	CodeTooLong ErrorCode = "TOO_LONG"

	// CodeInvalidCharacters reports a name containing characters outside
	// the accepted set.
	CodeInvalidCharacters ErrorCode = "INVALID_CHARACTERS"

	// CodeUnsupportedType reports a Validate call with a Type tag the
	// engine does not recognize.
	CodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
)

// Result is the outcome of validating a single value.
//
// When Valid is true, Normalized holds the canonical representation of
// the input and Metadata carries type-specific derived facts; Errors
// and ErrorCode are empty. When Valid is false, Errors holds at least
// one human-readable description and ErrorCode identifies the first
// failure; Normalized and Metadata are empty.
type Result struct {
	Valid      bool           `json:"valid"`
	Normalized string         `json:"normalized,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
	ErrorCode  ErrorCode      `json:"error_code,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// valid builds a success Result. Metadata may be nil.
func valid(normalized string, metadata map[string]any) Result {
	return Result{
		Valid:      true,
		Normalized: normalized,
		Metadata:   metadata,
	}
}

// invalid builds a failure Result carrying a single problem.
func invalid(code ErrorCode, message string) Result {
	return Result{
		Valid:     false,
		Errors:    []string{message},
		ErrorCode: code,
	}
}

// invalidAll builds a failure Result from accumulated problems. The
// code identifies the first failure; messages keep check order.
func invalidAll(code ErrorCode, messages []string) Result {
	return Result{
		Valid:     false,
		Errors:    messages,
		ErrorCode: code,
	}
}
