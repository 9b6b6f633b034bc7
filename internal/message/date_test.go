package message

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso timestamp", "2026-02-25T10:30:00Z", "Feb 25, 2026, 10:30 AM"},
		{"afternoon", "2026-12-15T14:45:00Z", "Dec 15, 2026, 02:45 PM"},
		{"no zone", "2026-12-15T14:45:00", "Dec 15, 2026, 02:45 PM"},
		{"date only", "2026-06-01", "Jun 1, 2026, 12:00 AM"},
		{"invalid passthrough", "not-a-date", "not-a-date"},
		{"empty passthrough", "", ""},
		{"na passthrough", "N/A", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDate(tt.in)
			if got != tt.want {
				t.Fatalf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
