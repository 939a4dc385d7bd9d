package plan

import "fmt"

// catalog holds the immutable curriculum plans, keyed by length.
// Built once at init and never mutated afterwards; safe for unsynchronized
// concurrent reads.
var catalog map[int]*Plan

func init() {
	base := baseWeeks()
	catalog = map[int]*Plan{
		8:  {Weeks: base},
		12: {Weeks: stretchWeeks(base, spread12)},
		16: {Weeks: stretchWeeks(base, spread16)},
	}
}

// spread12 and spread16 assign a base (8-week) template to every week of the
// longer plans: the extra weeks repeat the decoding and fluency phases before
// advancing, keeping the same arc at a gentler ramp.
var (
	spread12 = []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 6, 7, 8}
	spread16 = []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8}
)

// stretchWeeks renumbers base templates across a longer plan.
func stretchWeeks(base []WeekDefinition, spread []int) []WeekDefinition {
	weeks := make([]WeekDefinition, len(spread))
	for i, baseWeek := range spread {
		w := base[baseWeek-1]
		w.Week = i + 1
		w.WeeksLabel = fmt.Sprintf("Week %d", i+1)
		weeks[i] = w
	}
	return weeks
}

func baseWeeks() []WeekDefinition {
	return []WeekDefinition{
		{
			Week:             1,
			Phase:            "Month 1 — Automatic Decoding",
			PhaseShort:       "Month 1",
			Title:            "Eliminate Letter & Vowel Lag",
			WeeksLabel:       "Weeks 1–2",
			Milestone:        "No hesitation on individual letters",
			RecommendedModes: []Mode{ModeConsonants, ModeLetters, ModeSyllables, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "10 min", Label: "Warm-up",
					Body: "Rapid-fire aleph-bet, forward then random order. Include final letters: ך ם ן ף ץ. Aim for smooth, not rushed."},
				{Time: "10–15 min", Label: "Vowel Drills",
					Body: "Every letter with all 8 vowels: Kamatz · Patach · Tzere · Segol · Cholam · Kubutz/Shuruk · Chirik · Sheva. Don't think — just sound it."},
				{Time: "15 min", Label: "Syllable Blending",
					Body: "Two- and three-letter clusters: בָּר · שֶׁמ · מַלְ · תּוֹר. Train your eye to grab clusters at once, not letter by letter."},
				{Time: "10–15 min", Label: "Slow Siddur Reading",
					Body: "Take 3–5 lines from a siddur. Read slowly but continuously. No translating. No stopping unless you truly freeze."},
			},
			Tip: "On hard days: 20 minutes and you win. Consistency beats motivation every time.",
		},
		{
			Week:             2,
			Phase:            "Month 1 — Automatic Decoding",
			PhaseShort:       "Month 1",
			Title:            "Eliminate Letter & Vowel Lag",
			WeeksLabel:       "Weeks 1–2",
			Milestone:        "No thinking about letters",
			RecommendedModes: []Mode{ModeConsonants, ModeLetters, ModeSyllables, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "10 min", Label: "Warm-up — Random Order",
					Body: "Aleph-bet in random order using the shuffle button. Beat yesterday's smoothness, not speed. The goal is zero lag."},
				{Time: "10–15 min", Label: "Vowel Drills — Scrambled",
					Body: "Drill vowels in random order. No fixed sequence — force instant recognition without the pattern crutch."},
				{Time: "15 min", Label: "Syllable Blending",
					Body: "Focus on clusters you hesitated on yesterday. Mark them mentally and return to them. Build automaticity."},
				{Time: "10–15 min", Label: "Slow Siddur Reading",
					Body: "Try to read one more line than yesterday without stopping. Eyes and mouth only — no translation in your head."},
			},
			Tip: "If you freeze on a letter — say it slowly once, then move on immediately. Never linger.",
		},
		{
			Week:             3,
			Phase:            "Month 1 — Automatic Decoding",
			PhaseShort:       "Month 1",
			Title:            "Increase Speed and Flow",
			WeeksLabel:       "Weeks 3–4",
			Milestone:        "Can read a full paragraph without stopping",
			RecommendedModes: []Mode{ModeSyllables, ModePhrases, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "10–15 min", Label: "Timed Reading",
					Body: "Pick a paragraph from a siddur or Tehillim. Read 5 minutes nonstop. Mark where you end; get further tomorrow."},
				{Time: "10 min", Label: "Sheva & Dagesh Focus",
					Body: "Open vs. closed syllables. Hard/soft letters: בּ vs. ב · פּ vs. פ · כּ vs. כ. Slow drill on anything that still trips you."},
				{Time: "15 min", Label: "Phrase Reading",
					Body: "Read in 3–5 word chunks. Your eyes should move ahead of your mouth — practice that gap."},
				{Time: "10 min", Label: "Out-Loud Projection",
					Body: "Read slightly louder than comfortable. Confidence improves fluency. Speak like you mean it."},
			},
			Tip: "Your eyes should always be one word ahead of your mouth. This is the skill you're building now.",
		},
		{
			Week:             4,
			Phase:            "Month 1 — Automatic Decoding",
			PhaseShort:       "Month 1",
			Title:            "Increase Speed and Flow",
			WeeksLabel:       "Weeks 3–4",
			Milestone:        "Can read Tehillim smoothly at a slow, steady pace",
			RecommendedModes: []Mode{ModeSyllables, ModePhrases, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "10–15 min", Label: "Timed Reading",
					Body: "Increase to 7 minutes nonstop. Track progress line by line — you should cover more ground than week 3."},
				{Time: "10 min", Label: "Sheva & Dagesh Refinement",
					Body: "Return to letters or vowels that still cause hesitation. Drill them in isolation until they fire automatically."},
				{Time: "15 min", Label: "Phrase Chunking",
					Body: "Read full phrases without pausing mid-phrase. Flow matters more than perfection at this stage."},
				{Time: "10 min", Label: "Projection + Pace Push",
					Body: "Read at a pace slightly faster than feels comfortable. You are pushing your floor upward."},
			},
			Tip: "Slow and steady is fine — but never stop mid-phrase. Push through and self-correct on the move.",
		},
		{
			Week:             5,
			Phase:            "Month 2 — Siddur Fluency",
			PhaseShort:       "Month 2",
			Title:            "Structured Prayer Fluency",
			WeeksLabel:       "Weeks 5–6",
			Milestone:        "Shema and Ashrei mostly fluid",
			RecommendedModes: []Mode{ModePhrases, ModePrayer, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "10 min", Label: "Speed Drill",
					Body: "Read one prayer paragraph repeatedly until smooth — Shema, Ashrei, or V'ahavta. No hesitation allowed."},
				{Time: "10 min", Label: "Record Yourself",
					Body: "Read a paragraph aloud and play it back. Notice hesitations, misread vowels, dropped letters. Don't judge — observe."},
				{Time: "20 min", Label: "Full Section Run-Through",
					Body: "Read one full prayer start to finish without stopping. Even if imperfect — don't break rhythm."},
				{Time: "5–10 min", Label: "Cold Read",
					Body: "Open to a random page of a siddur and read. No preparation. This trains true sight reading."},
			},
			Tip: "Don't break rhythm even when you make a mistake. Flow over perfection, every time.",
		},
		{
			Week:             6,
			Phase:            "Month 2 — Siddur Fluency",
			PhaseShort:       "Month 2",
			Title:            "Structured Prayer Fluency",
			WeeksLabel:       "Weeks 5–6",
			Milestone:        "Shema and Ashrei mostly fluid",
			RecommendedModes: []Mode{ModePhrases, ModePrayer, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "10 min", Label: "Speed Drill — Amidah",
					Body: "Drill the Amidah opening paragraphs. Repeat until you can read without slowing down."},
				{Time: "10 min", Label: "Record & Compare",
					Body: "Record a longer passage. Compare to week 5 — notice real improvements. You are further than you think."},
				{Time: "20 min", Label: "Shema + Ashrei as One Unit",
					Body: "Read Shema + V'ahavta as one continuous unit, then Ashrei. No gap between them."},
				{Time: "5–10 min", Label: "Cold Read",
					Body: "A different random page each session. Unknown text is the real test."},
			},
			Tip: "You are building identity here, not just skill. Show up even on hard days — especially then.",
		},
		{
			Week:             7,
			Phase:            "Month 2 — Siddur Fluency",
			PhaseShort:       "Month 2",
			Title:            "Simulated Shul Pace",
			WeeksLabel:       "Weeks 7–8",
			Milestone:        "Can keep up in weekday Shacharit",
			RecommendedModes: []Mode{ModePrayer, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "20 min · 3×/week", Label: "Synagogue Simulation",
					Body: "Set a timer for 20 minutes. Read continuously as if you are in synagogue. No pauses, no corrections — keep moving."},
				{Time: "20 min · 2×/week", Label: "Audio Follow-Along",
					Body: "Read along with a recording of the prayer. Stay slightly ahead of the audio — you lead, the recording follows."},
				{Time: "5–10 min · 1×/week", Label: "Rabbi or Fluent Reader",
					Body: "Have a fluent reader listen to you read for 5–10 minutes. This is your weekly accountability check."},
			},
			Tip: "Minimum viable habit: 20 minutes no matter what. On hard days — 20 minutes and you win.",
		},
		{
			Week:             8,
			Phase:            "Month 2 — Siddur Fluency",
			PhaseShort:       "Month 2",
			Title:            "Simulated Shul Pace",
			WeeksLabel:       "Weeks 7–8",
			Milestone:        "Can keep up reasonably in weekday Shacharit",
			RecommendedModes: []Mode{ModePrayer, ModeSiddur},
			DailyMinutes:     "45–60",
			Blocks: []TimeBlock{
				{Time: "20 min · 3×/week", Label: "Full Shacharit Run-Through",
					Body: "Read the complete weekday morning service start to finish at near-minyan pace."},
				{Time: "20 min · 2×/week", Label: "Audio Pace Challenge",
					Body: "Stay ahead of the audio recording this week. If you can consistently lead it — you are ready."},
				{Time: "10 min · 1×/week", Label: "Rabbi Check-In",
					Body: "Read aloud for your rabbi or study partner. Celebrate how far you have come since week 1."},
			},
			Tip: "On strong days: 60 minutes. On hard days: 20 minutes and you win. You have built something real.",
		},
	}
}
