package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

// emailRegex accepts the common practical shape of an address rather
// than the full RFC 5322 grammar: one or more atom characters, an @,
// and a dotted domain with an alphabetic top-level label.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// disposableDomains lists throwaway email providers. Addresses on
// these domains still validate; the flag surfaces in Metadata so
// callers can apply their own policy.
var disposableDomains = map[string]struct{}{
	"10minutemail.com":  {},
	"dispostable.com":   {},
	"getnada.com":       {},
	"guerrillamail.com": {},
	"maildrop.cc":       {},
	"mailinator.com":    {},
	"sharklasers.com":   {},
	"temp-mail.org":     {},
	"tempmail.com":      {},
	"throwaway.email":   {},
	"trashmail.com":     {},
	"yopmail.com":       {},
}

// ValidateEmail checks an email address.
//
// The input is trimmed, bounded to 254 characters total and 64 for the
// local part, and matched against a conservative address shape. Valid
// addresses normalize to lowercase. Metadata carries the domain under
// "domain" and "disposable" reporting whether the domain belongs to a
// known throwaway provider.
func ValidateEmail(value string) Result {
	trimmed := sanitizer.Trim(value)

	if trimmed == "" {
		return invalid(CodeMissingEmail, "email is required")
	}
	if len(trimmed) > 254 {
		return invalid(CodeEmailTooLong, fmt.Sprintf("must be at most 254 characters, got %d", len(trimmed)))
	}
	if !emailRegex.MatchString(trimmed) {
		return invalid(CodeInvalidFormat, "must be a valid email address")
	}

	at := strings.LastIndex(trimmed, "@")
	if at > 64 {
		return invalid(CodeLocalPartTooLong, fmt.Sprintf("local part must be at most 64 characters, got %d", at))
	}

	normalized := sanitizer.ToLower(trimmed)
	domain := normalized[strings.LastIndex(normalized, "@")+1:]
	_, disposable := disposableDomains[domain]

	return valid(normalized, map[string]any{
		"domain":     domain,
		"disposable": disposable,
	})
}
