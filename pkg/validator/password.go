package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

// PasswordMask replaces the plaintext in Result.Normalized for valid
// passwords. The token is fixed so nothing about the secret, including
// its length, leaks into logs or API responses.
const PasswordMask = "********"

var (
	passwordUpperRegex  = regexp.MustCompile(`[A-Z]`)
	passwordLowerRegex  = regexp.MustCompile(`[a-z]`)
	passwordNumberRegex = regexp.MustCompile(`[0-9]`)
	passwordSymbolRegex = regexp.MustCompile("[!@#$%^&*()_+\\-=\\[\\]{};':\"\\\\|,.<>/?~`]")
)

// PasswordPolicy configures which requirements ValidatePassword
// enforces. A zero MinLength or MaxLength disables that bound.
type PasswordPolicy struct {
	MinLength     int  `json:"min_length"`
	MaxLength     int  `json:"max_length"`
	RequireUpper  bool `json:"require_upper"`
	RequireLower  bool `json:"require_lower"`
	RequireNumber bool `json:"require_number"`
	RequireSymbol bool `json:"require_symbol"`
	ForbidCommon  bool `json:"forbid_common"`
}

// DefaultPasswordPolicy returns the policy applied when callers do not
// supply one: 8 to 128 characters, every character class required, and
// well-known passwords rejected.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     8,
		MaxLength:     128,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
		RequireSymbol: true,
		ForbidCommon:  true,
	}
}

// ValidatePassword checks a password against the policy.
//
// Unlike the identifier validators, every failed requirement is
// reported: Result.Errors lists all violations in policy order under
// the single CodePasswordPolicyViolation code. The empty string is
// rejected under every policy. Valid passwords normalize to
// PasswordMask, never the plaintext, and Metadata carries a 0 to 5
// "strength" score derived from length and character variety.
func ValidatePassword(value string, policy PasswordPolicy) Result {
	var violations []string

	switch {
	case value == "":
		violations = append(violations, "must not be empty")
	case policy.MinLength > 0 && len(value) < policy.MinLength:
		violations = append(violations, fmt.Sprintf("must be at least %d characters long", policy.MinLength))
	}
	if policy.MaxLength > 0 && len(value) > policy.MaxLength {
		violations = append(violations, fmt.Sprintf("must be at most %d characters long", policy.MaxLength))
	}
	if policy.RequireUpper && !passwordUpperRegex.MatchString(value) {
		violations = append(violations, "must contain at least one uppercase letter")
	}
	if policy.RequireLower && !passwordLowerRegex.MatchString(value) {
		violations = append(violations, "must contain at least one lowercase letter")
	}
	if policy.RequireNumber && !passwordNumberRegex.MatchString(value) {
		violations = append(violations, "must contain at least one number")
	}
	if policy.RequireSymbol && !passwordSymbolRegex.MatchString(value) {
		violations = append(violations, "must contain at least one symbol")
	}
	if policy.ForbidCommon {
		if _, common := commonPasswords[strings.ToLower(value)]; common {
			violations = append(violations, "is too common, choose a less predictable password")
		}
	}
	if sanitizer.HasEdgeWhitespace(value) {
		violations = append(violations, "must not start or end with whitespace")
	}

	if len(violations) > 0 {
		return invalidAll(CodePasswordPolicyViolation, violations)
	}

	return valid(PasswordMask, map[string]any{
		"strength": passwordStrength(value),
	})
}

// passwordStrength scores a password from 0 to 5. Length tiers at 8
// and 12 characters and each present character class add a point, with
// the total capped at 5.
func passwordStrength(value string) int {
	score := 0
	if len(value) >= 8 {
		score++
	}
	if len(value) >= 12 {
		score++
	}
	if passwordUpperRegex.MatchString(value) {
		score++
	}
	if passwordLowerRegex.MatchString(value) {
		score++
	}
	if passwordNumberRegex.MatchString(value) {
		score++
	}
	if passwordSymbolRegex.MatchString(value) {
		score++
	}
	if score > 5 {
		score = 5
	}
	return score
}

// commonPasswords holds widely used passwords, lowercase. The lookup
// is case-insensitive. Entries combine global leak staples with
// Brazilian favorites.
var commonPasswords = map[string]struct{}{
	"123456":      {},
	"123456789":   {},
	"12345678":    {},
	"1234567890":  {},
	"1234567":     {},
	"12345":       {},
	"123123":      {},
	"111111":      {},
	"000000":      {},
	"654321":      {},
	"666666":      {},
	"121212":      {},
	"112233":      {},
	"102030":      {},
	"10203040":    {},
	"abc123":      {},
	"1q2w3e4r":    {},
	"qwerty":      {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"asdfgh":      {},
	"zxcvbn":      {},
	"password":    {},
	"password1":   {},
	"password123": {},
	"passw0rd":    {},
	"admin":       {},
	"admin123":    {},
	"root":        {},
	"letmein":     {},
	"welcome":     {},
	"welcome1":    {},
	"iloveyou":    {},
	"dragon":      {},
	"monkey":      {},
	"master":      {},
	"shadow":      {},
	"superman":    {},
	"batman":      {},
	"trustno1":    {},
	"football":    {},
	"sunshine":    {},
	"princess":    {},
	"senha":       {},
	"senha123":    {},
	"senha1234":   {},
	"minhasenha":  {},
	"mudar123":    {},
	"123mudar":    {},
	"brasil":      {},
	"brasil123":   {},
	"flamengo":    {},
	"corinthians": {},
	"palmeiras":   {},
	"saopaulo":    {},
	"gremio":      {},
	"vasco":       {},
	"futebol":     {},
	"amor":        {},
	"teamo":       {},
	"deus":        {},
	"deusefiel":   {},
	"familia":     {},
}
