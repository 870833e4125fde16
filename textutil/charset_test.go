package textutil

import (
	"errors"
	"testing"
)

var asciiName = AllowedCharset{AllowLetters: true, AllowDigits: true, AllowSpace: true, ASCIIOnly: true}

func TestAllowedCharset_Check(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{name: "letters", in: "Ivan", ok: true},
		{name: "letters digits and spaces", in: "anna  maria 2", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "umlaut", in: "Jöhn", ok: false},
		{name: "full width letter", in: "Ｊohn", ok: false},
		{name: "ligature", in: "ﬁona", ok: false},
		{name: "roman numeral", in: "Ⅳan", ok: false},
		{name: "superscript digit", in: "Jo²", ok: false},
		{name: "nbsp", in: "John\u00a0Smith", ok: false},
		{name: "tab", in: "John\tSmith", ok: false},
		{name: "apostrophe", in: "O'Neil", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := asciiName.Check(tt.in)
			if tt.ok && err != nil {
				t.Fatalf("Check(%q) = %v, want nil", tt.in, err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidText) {
				t.Fatalf("Check(%q) = %v, want ErrInvalidText", tt.in, err)
			}
		})
	}
}

func TestAllowedCharset_NonASCII(t *testing.T) {
	cs := AllowedCharset{AllowLetters: true, ExtraAllowed: "-"}
	if err := cs.Check("Jöhn-Paul"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cs.Check("John Paul"); err == nil {
		t.Fatalf("space must be rejected when AllowSpace is false")
	}
}

func TestAllowedCharset_SuggestFolded(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "Ｊohn", want: "John", ok: true},
		{in: "ﬁona", want: "fiona", ok: true},
		{in: "John\u00a0Smith", want: "John Smith", ok: true},
		{in: "John", ok: false},
		{in: "Jöhn", ok: false},
	}

	for _, tt := range tests {
		got, ok := asciiName.SuggestFolded(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("SuggestFolded(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
