package types

import "testing"

func TestContributorInitials(t *testing.T) {
	tests := []struct {
		name  string
		given string
		want  string
	}{
		{"two names", "Odd Even", "OE"},
		{"hyphenated", "Odd-Even", "OE"},
		{"single", "Arne", "A"},
		{"lowercase", "arne bjørke", "AB"},
		{"non-ascii first rune", "Åse", "Å"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"mixed separators", "Jon-Olav Vik", "JOV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Contributor{Surname: "Strange", GivenName: tt.given}
			if got := c.Initials(); got != tt.want {
				t.Errorf("Initials() = %q, want %q", got, tt.want)
			}
		})
	}
}
