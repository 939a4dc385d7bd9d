package plan

import "testing"

func TestParseLeadingMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantOK  bool
	}{
		{"10 min", 10, true},
		{"10–15 min", 10, true},
		{"20 min · 3×/week", 20, true},
		{"5–10 min · 1×/week", 5, true},
		{"  15 min", 15, true},
		{"120", 120, true},
		{"0 min", 0, true},
		{"no numbers here", 0, false},
		{"min 10", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseLeadingMinutes(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseLeadingMinutes(%q) ok=%v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseLeadingMinutes(%q)=%d, want %d", tt.in, got, tt.want)
		}
	}
}
