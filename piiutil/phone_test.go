package piiutil

import "testing"

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "89161234567", want: "*******4567"},
		{in: "+7 916 123-45-67", want: "+* *** ***-45-67"},
		{in: "  89161234567  ", want: "*******4567"},
		{in: "1234", want: "***4"},
		{in: "123", want: "**3"},
		{in: "1", want: "1"},
		{in: "AB-CD", want: "**-*D"},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MaskPhone(tt.in); got != tt.want {
				t.Fatalf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
