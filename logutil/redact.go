// Package logutil prepares user input for log lines.
package logutil

import (
	"maps"
	"strings"
	"unicode"
)

const defaultReplacement = "[REDACTED]"

// Contact details that never reach a production log as-is.
var defaultSensitive = newKeySet("phone", "birthdate", "birth", "dob", "password", "secret", "token")

// SanitizeFields returns a copy of fields with sensitive values replaced.
// In development and debug environments values pass through unchanged.
// A field is sensitive when its key, or any word of it ("newPhone",
// "home_phone"), is a default or extra sensitive key.
func SanitizeFields(fields map[string]string, env, replacement string, extra ...string) map[string]string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "debug":
		return maps.Clone(fields)
	}
	return redact(fields, replacement, extra)
}

// SanitizeFieldsStrict redacts regardless of environment.
func SanitizeFieldsStrict(fields map[string]string, replacement string, extra ...string) map[string]string {
	return redact(fields, replacement, extra)
}

func redact(fields map[string]string, replacement string, extra []string) map[string]string {
	if fields == nil {
		return nil
	}
	if replacement == "" {
		replacement = defaultReplacement
	}

	custom := newKeySet(extra...)
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if defaultSensitive.covers(k) || custom.covers(k) {
			v = replacement
		}
		out[k] = v
	}
	return out
}

// keySet holds whole keys plus the words they split into.
type keySet struct {
	keys  map[string]struct{}
	words map[string]struct{}
}

func newKeySet(keys ...string) keySet {
	s := keySet{keys: map[string]struct{}{}, words: map[string]struct{}{}}
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		s.keys[k] = struct{}{}
		for _, w := range splitWords(k) {
			s.words[w] = struct{}{}
		}
	}
	return s
}

func (s keySet) covers(field string) bool {
	field = strings.TrimSpace(field)
	if field == "" {
		return false
	}
	if _, ok := s.keys[strings.ToLower(field)]; ok {
		return true
	}
	for _, w := range splitWords(field) {
		if _, ok := s.words[w]; ok {
			return true
		}
	}
	return false
}

// splitWords lower-cases s and splits it on non-alphanumerics and on
// camelCase boundaries: "newPhone" and "new_phone" both give [new phone].
func splitWords(s string) []string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	prevLower := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte(' ')
			prevLower = false
			continue
		}
		if unicode.IsUpper(r) && prevLower {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return strings.Fields(b.String())
}
