package textutil

import (
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00"},
		{1400 * time.Millisecond, "0:00:01"},
		{61 * time.Second, "0:01:01"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3:04:05"},
		{25 * time.Hour, "1 day, 1:00:00"},
		{50 * time.Hour, "2 days, 2:00:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Fatalf("FormatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "file"); got != "file" {
		t.Fatalf("Plural(1) = %q", got)
	}
	if got := Plural(0, "file"); got != "files" {
		t.Fatalf("Plural(0) = %q", got)
	}
	if got := Plural(3, "file"); got != "files" {
		t.Fatalf("Plural(3) = %q", got)
	}
}
