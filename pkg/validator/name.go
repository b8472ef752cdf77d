package validator

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

const (
	nameMinRunes = 2
	nameMaxRunes = 100
)

// ValidateName checks a person's name.
//
// Input is NFC-normalized first, so decomposed accents ("Jose´") and
// precomposed ones ("José") validate identically, then surrounding
// whitespace is trimmed and internal runs collapse to single spaces.
// The collapsed name must be 2 to 100 runes of Latin letters,
// apostrophes, hyphens, and spaces. Length and character problems
// accumulate, so a bad name reports everything wrong with it at once.
func ValidateName(value string) Result {
	collapsed := sanitizer.Apply(value, norm.NFC.String, sanitizer.CollapseWhitespace)

	var problems []string
	var code ErrorCode

	switch n := utf8.RuneCountInString(collapsed); {
	case n < nameMinRunes:
		problems = append(problems, fmt.Sprintf("must be at least %d characters long", nameMinRunes))
		code = CodeTooShort
	case n > nameMaxRunes:
		problems = append(problems, fmt.Sprintf("must be at most %d characters long", nameMaxRunes))
		code = CodeTooLong
	}

	for _, r := range collapsed {
		if !isNameRune(r) {
			problems = append(problems, "must contain only letters, apostrophes, hyphens, and spaces")
			if code == "" {
				code = CodeInvalidCharacters
			}
			break
		}
	}

	if len(problems) > 0 {
		return invalidAll(code, problems)
	}
	return valid(collapsed, nil)
}

// isNameRune reports whether r may appear in a validated name. Accented
// Portuguese letters are Latin-script, so unicode.Latin covers them.
func isNameRune(r rune) bool {
	return unicode.Is(unicode.Latin, r) || r == ' ' || r == '\'' || r == '-'
}
