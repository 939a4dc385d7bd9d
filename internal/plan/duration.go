package plan

import "strings"

// ParseLeadingMinutes extracts the leading decimal integer of a time-block
// duration annotation, interpreted as minutes.
//
// Annotations are free text: "10 min" → 10, "10–15 min" → 10 (the upper
// bound of a range is discarded), "20 min · 3×/week" → 20 (the frequency
// qualifier is discarded). The lossiness is intentional: a nominal target
// is a single number, not a range. Text that does not start with a digit
// after trimming yields ok=false.
func ParseLeadingMinutes(s string) (minutes int, ok bool) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		minutes = minutes*10 + int(s[i]-'0')
		i++
	}
	return minutes, i > 0
}
