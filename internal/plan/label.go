package plan

import "strings"

// labelModes maps curriculum block labels (lowercased) to canonical modes.
// Maintained alongside the curriculum catalog: when a week definition gains a
// new actionable block label, it must be added here or the block contributes
// nothing to targets. Multiple labels may resolve to the same mode.
//
// Labels with no entry are intentionally absent — self-assessment and
// accountability blocks (recordings, rabbi check-ins, projection work) carry
// no drill mode.
var labelModes = map[string]Mode{
	"warm-up":                   ModeConsonants,
	"warm-up — random order":    ModeConsonants,
	"vowel drills":              ModeLetters,
	"vowel drills — scrambled":  ModeLetters,
	"syllable blending":         ModeSyllables,
	"sheva & dagesh focus":      ModeSyllables,
	"sheva & dagesh refinement": ModeSyllables,
	"phrase reading":            ModePhrases,
	"phrase chunking":           ModePhrases,
	"slow siddur reading":       ModeSiddur,
	"timed reading":             ModeSiddur,
	"cold read":                 ModeSiddur,
	"synagogue simulation":      ModeSiddur,
	"full shacharit run-through": ModeSiddur,
	"speed drill":                ModePrayer,
	"speed drill — amidah":       ModePrayer,
	"full section run-through":   ModePrayer,
	"shema + ashrei as one unit": ModePrayer,
	"audio follow-along":         ModePrayer,
	"audio pace challenge":       ModePrayer,
}

// ResolveLabel maps a block label to its canonical mode, case-insensitively.
// Unmapped labels return ok=false; that is a silent skip, not an error.
func ResolveLabel(label string) (Mode, bool) {
	m, ok := labelModes[strings.ToLower(strings.TrimSpace(label))]
	return m, ok
}
