package plan

import "time"

// SessionRecord is the slice of a practice session the week resolver needs.
// Date must already be in the deployment's local day (see config.PlanConfig).
type SessionRecord struct {
	Date    time.Time
	Minutes int
}

// WeekStats aggregates one curriculum week of history.
// Days counts distinct practice dates; Minutes sums every session.
type WeekStats struct {
	Days    int `json:"days"`
	Minutes int `json:"minutes"`
}

// WeekPosition locates a user inside their plan.
type WeekPosition struct {
	Week      int                  // current week, always in [1, planWeeks]
	StartDate *time.Time           // earliest session date; nil when no sessions
	History   map[int]WeekStats    // week index → aggregate, only weeks with sessions
}

// ResolveWeek computes the user's current curriculum week and per-week
// history from their full session list.
//
// The start date is the earliest session date. Elapsed whole days between
// start and today place the user at week elapsed/7 + 1, clamped to the
// plan's final week — finishing the plan leaves the user on week N
// indefinitely. A user with no sessions is in week 1 with no start date.
//
// History buckets every session by the same formula applied to its own
// date. Two sessions on one date count one day but both their minutes.
func ResolveWeek(sessions []SessionRecord, today time.Time, planWeeks int) WeekPosition {
	pos := WeekPosition{Week: 1, History: map[int]WeekStats{}}
	if len(sessions) == 0 {
		return pos
	}

	start := dateOnly(sessions[0].Date)
	for _, s := range sessions[1:] {
		if d := dateOnly(s.Date); d.Before(start) {
			start = d
		}
	}
	pos.StartDate = &start
	pos.Week = weekFor(today, start, planWeeks)

	seen := map[int]map[time.Time]bool{}
	for _, s := range sessions {
		d := dateOnly(s.Date)
		wk := weekFor(d, start, planWeeks)

		stats := pos.History[wk]
		if seen[wk] == nil {
			seen[wk] = map[time.Time]bool{}
		}
		if !seen[wk][d] {
			seen[wk][d] = true
			stats.Days++
		}
		stats.Minutes += s.Minutes
		pos.History[wk] = stats
	}

	return pos
}

// weekFor buckets a date into a 1-indexed week relative to start, clamped
// at planWeeks. Partial days count as zero elapsed.
func weekFor(date, start time.Time, planWeeks int) int {
	days := int(dateOnly(date).Sub(dateOnly(start)).Hours() / 24)
	week := days/7 + 1
	if week > planWeeks {
		week = planWeeks
	}
	if week < 1 {
		week = 1
	}
	return week
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
