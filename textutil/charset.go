// Package textutil holds character-level text rules.
package textutil

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidText = errors.New("invalid text")

// AllowedCharset lists the runes a value may contain. Space means the
// ASCII space only; other whitespace such as tab or NBSP is never allowed.
type AllowedCharset struct {
	AllowLetters bool
	AllowDigits  bool
	AllowSpace   bool

	// ASCIIOnly limits letters and digits to A-Z, a-z and 0-9.
	ASCIIOnly bool

	ExtraAllowed string
}

// Allows reports whether r belongs to the charset.
func (cs AllowedCharset) Allows(r rune) bool {
	if r == ' ' {
		return cs.AllowSpace
	}
	if cs.ASCIIOnly && r > unicode.MaxASCII {
		return strings.ContainsRune(cs.ExtraAllowed, r)
	}
	switch {
	case cs.AllowLetters && unicode.IsLetter(r):
		return true
	case cs.AllowDigits && unicode.IsDigit(r):
		return true
	}
	return strings.ContainsRune(cs.ExtraAllowed, r)
}

// Check returns ErrInvalidText when s is empty or holds a rune outside the charset.
func (cs AllowedCharset) Check(s string) error {
	if s == "" {
		return ErrInvalidText
	}
	for _, r := range s {
		if !cs.Allows(r) {
			return ErrInvalidText
		}
	}
	return nil
}

// SuggestFolded returns the NFKC compatibility form of s when that form,
// unlike s itself, passes the charset: "Ｊohn" suggests "John".
// It only proposes a spelling; callers still reject s.
func (cs AllowedCharset) SuggestFolded(s string) (string, bool) {
	if cs.Check(s) == nil {
		return "", false
	}
	folded := norm.NFKC.String(s)
	if folded == s || cs.Check(folded) != nil {
		return "", false
	}
	return folded, true
}
