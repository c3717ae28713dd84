package utils

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0.00 B"},
		{"one byte", 1, "1.00 B"},
		{"just below KB", 1023, "1023.00 B"},
		{"exactly KB", KB, "1.00 KB"},
		{"one and a half KB", 1536, "1.50 KB"},
		{"just below MB", MB - 1, "1024.00 KB"},
		{"exactly MB", MB, "1.00 MB"},
		{"exactly GB", GB, "1.00 GB"},
		{"exactly TB", TB, "1.00 TB"},
		{"beyond TB stays TB", 2048 * TB, "2048.00 TB"},
		{"negative", -5, "0.00 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
