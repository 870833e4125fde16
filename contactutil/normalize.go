package contactutil

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vortex-fintech/phonebook/textutil"
)

// BirthdateLayout is the storage layout for birthdates (DD.MM.YYYY).
const BirthdateLayout = "02.01.2006"

// birthdateInputLayout also accepts single digit day and month.
const birthdateInputLayout = "2.1.2006"

// NameCharset is the charset of names and surnames: ASCII letters,
// digits and the ASCII space.
var NameCharset = textutil.AllowedCharset{
	AllowLetters: true,
	AllowDigits:  true,
	AllowSpace:   true,
	ASCIIOnly:    true,
}

// asciiSpace is trimmed from names; any other whitespace is left for
// validation to reject.
const asciiSpace = " \t\r\n\v\f"

// NormalizeName trims ASCII whitespace and, when the rest is within
// NameCharset, capitalizes the first character and lower-cases the
// remainder: "iVAN  petrov" -> "Ivan  petrov". Anything else is returned
// trimmed but otherwise as typed so validation sees the raw characters.
func NormalizeName(s string) string {
	s = strings.Trim(s, asciiSpace)
	if NameCharset.Check(s) != nil {
		return s
	}
	return CapitalizeFirst(s)
}

// IsName reports whether s is a non-empty value within NameCharset.
func IsName(s string) bool { return NameCharset.Check(s) == nil }

// SuggestName proposes an ASCII spelling for a rejected name whose
// compatibility form is valid ("Ｊohn" -> "John").
func SuggestName(s string) (string, bool) {
	folded, ok := NameCharset.SuggestFolded(s)
	if !ok {
		return "", false
	}
	return NormalizeName(folded), true
}

// CapitalizeFirst upper-cases the first rune and lower-cases the remainder.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// NormalizePhone trims the value and rewrites a leading "+7" to "8".
// Length and digit checks are left to validation.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "+7"); ok {
		return "8" + rest
	}
	return s
}

// PhoneHint explains why a normalized phone is not 11 digits, or returns
// "" when it is valid or there is nothing more useful to say than the rule.
func PhoneHint(phone string) string {
	digits, other := 0, 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(" -()", r):
			other++
		default:
			return "digits only"
		}
	}
	switch {
	case other > 0 && digits == 11:
		return "remove separators"
	case other == 0 && digits != 11:
		return fmt.Sprintf("got %d digits", digits)
	}
	return ""
}

// NormalizeBirthdate re-renders a parseable date in BirthdateLayout
// ("1.2.2000" -> "01.02.2000"). Unparseable input is returned trimmed.
func NormalizeBirthdate(s string) string {
	s = strings.TrimSpace(s)
	t, err := time.Parse(birthdateInputLayout, s)
	if err != nil {
		return s
	}
	return t.Format(BirthdateLayout)
}

// ParseBirthdate parses a stored birthdate.
func ParseBirthdate(s string) (time.Time, error) {
	return time.Parse(BirthdateLayout, s)
}
