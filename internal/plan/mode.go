package plan

// Mode is a canonical drill/activity category.
type Mode string

// The fixed mode set. ModeSiddur is the anchor activity: its target has
// floor-override semantics the other modes do not have.
const (
	ModeConsonants Mode = "consonants"
	ModeLetters    Mode = "letters"
	ModeSyllables  Mode = "syllables"
	ModePhrases    Mode = "phrases"
	ModePrayer     Mode = "prayer"
	ModeSiddur     Mode = "siddur"
)

// AnchorMode is the privileged liturgical-reading mode.
const AnchorMode = ModeSiddur

// AllModes lists every mode in display order.
func AllModes() []Mode {
	return []Mode{ModeConsonants, ModeLetters, ModeSyllables, ModePhrases, ModePrayer, ModeSiddur}
}

// ValidMode reports whether s names one of the fixed modes.
func ValidMode(s string) bool {
	switch Mode(s) {
	case ModeConsonants, ModeLetters, ModeSyllables, ModePhrases, ModePrayer, ModeSiddur:
		return true
	}
	return false
}
