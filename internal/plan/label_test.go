package plan

import "testing"

func TestResolveLabel(t *testing.T) {
	tests := []struct {
		label  string
		want   Mode
		wantOK bool
	}{
		{"Warm-up", ModeConsonants, true},
		{"warm-up", ModeConsonants, true},
		{"WARM-UP — RANDOM ORDER", ModeConsonants, true},
		{"Vowel Drills", ModeLetters, true},
		{"Syllable Blending", ModeSyllables, true},
		{"Phrase Chunking", ModePhrases, true},
		{"Slow Siddur Reading", ModeSiddur, true},
		{"Cold Read", ModeSiddur, true},
		{"Speed Drill — Amidah", ModePrayer, true},
		{"  Timed Reading  ", ModeSiddur, true},
		// self-assessment blocks have no mode on purpose
		{"Record Yourself", "", false},
		{"Rabbi Check-In", "", false},
		{"Out-Loud Projection", "", false},
		{"never heard of it", "", false},
	}

	for _, tt := range tests {
		got, ok := ResolveLabel(tt.label)
		if ok != tt.wantOK {
			t.Errorf("ResolveLabel(%q) ok=%v, want %v", tt.label, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ResolveLabel(%q)=%s, want %s", tt.label, got, tt.want)
		}
	}
}

// Two distinct warm-up labels resolve to the same mode.
func TestResolveLabel_ManyToOne(t *testing.T) {
	a, okA := ResolveLabel("Warm-up")
	b, okB := ResolveLabel("Warm-up — Random Order")
	if !okA || !okB {
		t.Fatal("both warm-up labels should resolve")
	}
	if a != b {
		t.Errorf("expected both warm-up labels to resolve to one mode, got %s and %s", a, b)
	}
}
