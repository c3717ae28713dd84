package scanner

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "a.tmp", "a.tmp"},
		{"exactly 50", strings.Repeat("a", 50), strings.Repeat("a", 50)},
		{"51 chars", strings.Repeat("a", 51), strings.Repeat("a", 47) + "..."},
		{"multibyte", strings.Repeat("ж", 60), strings.Repeat("ж", 47) + "..."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayName(tt.in)
			if got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
			if n := utf8.RuneCountInString(got); n > MaxDisplayName {
				t.Errorf("DisplayName() has %d runes, limit %d", n, MaxDisplayName)
			}
		})
	}
}
