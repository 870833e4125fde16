package contactutil

import (
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase", in: "john", want: "John"},
		{name: "uppercase", in: "PETROV", want: "Petrov"},
		{name: "mixed case", in: "iVaN", want: "Ivan"},
		{name: "trim keeps inner spaces", in: "  anna   maria ", want: "Anna   maria"},
		{name: "leading digit", in: "2pac", want: "2pac"},
		{name: "long name", in: strings.Repeat("a", 100), want: "A" + strings.Repeat("a", 99)},
		{name: "full width is not folded", in: "ｉｖａｎ", want: "ｉｖａｎ"},
		{name: "non ascii is left as typed", in: "jöhn", want: "jöhn"},
		{name: "kelvin sign is not lower-cased", in: "\u212Aate", want: "\u212Aate"},
		{name: "nbsp is not trimmed", in: "\u00a0john", want: "\u00a0john"},
		{name: "empty after trim", in: "   ", want: ""},
		{name: "inner tab left for validation", in: " a\tb ", want: "a\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	for _, in := range []string{"john", "JOHN SMITH", "o neil", "X"} {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Fatalf("NormalizeName not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestSuggestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "\uff4aohn", want: "John", ok: true},
		{in: "\ufb01ona", want: "Fiona", ok: true},
		{in: "john\u00a0smith", want: "John smith", ok: true},
		{in: "j\u00f6hn", ok: false},
		{in: "john", ok: false},
	}
	for _, tt := range tests {
		got, ok := SuggestName(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("SuggestName(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPhoneHint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "89161234567", want: ""},
		{in: "8 916 123 45 67", want: "remove separators"},
		{in: "8(916)123-45-67", want: "remove separators"},
		{in: "123", want: "got 3 digits"},
		{in: "8916123456x", want: "digits only"},
		{in: "8 916 123", want: ""},
	}
	for _, tt := range tests {
		if got := PhoneHint(tt.in); got != tt.want {
			t.Fatalf("PhoneHint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plus seven prefix", in: "+79161234567", want: "89161234567"},
		{name: "already eight", in: "89161234567", want: "89161234567"},
		{name: "trim", in: "  +79161234567 ", want: "89161234567"},
		{name: "plus seven only as prefix", in: "8916+7234567", want: "8916+7234567"},
		{name: "short is preserved", in: "123", want: "123"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeBirthdate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "canonical", in: "15.06.2000", want: "15.06.2000"},
		{name: "single digits padded", in: "1.2.2000", want: "01.02.2000"},
		{name: "trim", in: " 15.06.2000 ", want: "15.06.2000"},
		{name: "impossible day preserved", in: "31.02.2000", want: "31.02.2000"},
		{name: "wrong separator preserved", in: "2000-06-15", want: "2000-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBirthdate(tt.in); got != tt.want {
				t.Fatalf("NormalizeBirthdate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
