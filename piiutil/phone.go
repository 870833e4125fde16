package piiutil

import (
	"strings"
	"unicode"
)

// MaskPhone masks a phone value while preserving formatting symbols.
// It keeps the last 1 or 4 digits:
//   - if total digits <= 4 -> keep 1 last digit
//   - if total digits > 4  -> keep 4 last digits
//
// Examples:
//
//	"89161234567"       -> "*******4567"
//	"+7 916 123-45-67"  -> "+* *** ***-45-67"
//	"123"               -> "**3"
//	"1"                 -> "1"
//	"AB-CD" (no digits) -> "**-*D"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	if !maskDigitsKeepLast4Or1(runes) {
		return maskLettersAndDigitsKeepLast(runes, 1)
	}
	return string(runes)
}

const (
	shortDigitCount = 4
	keepShort       = 1
	keepLong        = 4
)

// maskDigitsKeepLast4Or1 masks digits in place, right to left, past the
// kept tail. It reports false when runes contain no digits.
func maskDigitsKeepLast4Or1(runes []rune) bool {
	total := countFunc(runes, unicode.IsDigit)
	if total == 0 {
		return false
	}

	keep := keepLong
	if total <= shortDigitCount {
		keep = keepShort
	}
	maskTail(runes, keep, unicode.IsDigit)
	return true
}

func maskLettersAndDigitsKeepLast(runes []rune, keep int) string {
	isSignificant := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	maskTail(runes, max(keep, 1), isSignificant)
	return string(runes)
}

// maskTail replaces every rune matching f with '*' except the last keep of them.
func maskTail(runes []rune, keep int, f func(rune) bool) {
	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !f(runes[i]) {
			continue
		}
		seen++
		if seen > keep {
			runes[i] = '*'
		}
	}
}

func countFunc(runes []rune, f func(rune) bool) int {
	n := 0
	for _, r := range runes {
		if f(r) {
			n++
		}
	}
	return n
}
