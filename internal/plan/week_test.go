package plan

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── current week ──

func TestResolveWeek_NoSessions(t *testing.T) {
	pos := ResolveWeek(nil, date(2024, 3, 1), 8)
	if pos.Week != 1 {
		t.Errorf("expected week 1 with no sessions, got %d", pos.Week)
	}
	if pos.StartDate != nil {
		t.Errorf("expected nil start date, got %v", pos.StartDate)
	}
	if len(pos.History) != 0 {
		t.Errorf("expected empty history, got %v", pos.History)
	}
}

func TestResolveWeek_Boundaries(t *testing.T) {
	start := date(2024, 1, 1)
	sessions := []SessionRecord{{Date: start, Minutes: 10}}

	tests := []struct {
		elapsedDays int
		want        int
	}{
		{0, 1},
		{6, 1},
		{7, 2},
		{13, 2},
		{14, 3},
		{55, 8},      // 8*7-1 → final week
		{56, 8},      // 8*7 → clamped
		{365, 8},     // long past the plan → stays on week N
	}

	for _, tt := range tests {
		today := start.AddDate(0, 0, tt.elapsedDays)
		pos := ResolveWeek(sessions, today, 8)
		if pos.Week != tt.want {
			t.Errorf("elapsed=%d: expected week %d, got %d", tt.elapsedDays, tt.want, pos.Week)
		}
	}
}

func TestResolveWeek_AlwaysInRange(t *testing.T) {
	start := date(2024, 1, 1)
	sessions := []SessionRecord{{Date: start, Minutes: 5}}

	for _, planWeeks := range PlanLengths() {
		for d := 0; d <= planWeeks*7+30; d++ {
			pos := ResolveWeek(sessions, start.AddDate(0, 0, d), planWeeks)
			if pos.Week < 1 || pos.Week > planWeeks {
				t.Fatalf("planWeeks=%d elapsed=%d: week %d out of [1,%d]", planWeeks, d, pos.Week, planWeeks)
			}
		}
	}
}

func TestResolveWeek_StartIsEarliestDate(t *testing.T) {
	sessions := []SessionRecord{
		{Date: date(2024, 2, 10), Minutes: 10},
		{Date: date(2024, 2, 1), Minutes: 10},
		{Date: date(2024, 2, 5), Minutes: 10},
	}

	pos := ResolveWeek(sessions, date(2024, 2, 10), 8)
	if pos.StartDate == nil || !pos.StartDate.Equal(date(2024, 2, 1)) {
		t.Errorf("expected start 2024-02-01, got %v", pos.StartDate)
	}
	// 9 elapsed days → week 2
	if pos.Week != 2 {
		t.Errorf("expected week 2, got %d", pos.Week)
	}
}

// ── history aggregate ──

func TestResolveWeek_HistoryBucketsByOwnDate(t *testing.T) {
	start := date(2024, 1, 1)
	sessions := []SessionRecord{
		{Date: start, Minutes: 10},                   // week 1
		{Date: start.AddDate(0, 0, 3), Minutes: 20},  // week 1
		{Date: start.AddDate(0, 0, 16), Minutes: 12}, // week 3
	}

	// "today" is week 5; history must still bucket each session by its own date
	pos := ResolveWeek(sessions, start.AddDate(0, 0, 30), 8)
	if pos.Week != 5 {
		t.Fatalf("expected current week 5, got %d", pos.Week)
	}

	if got := pos.History[1]; got.Days != 2 || got.Minutes != 30 {
		t.Errorf("week 1: expected {days:2 minutes:30}, got %+v", got)
	}
	if got := pos.History[3]; got.Days != 1 || got.Minutes != 12 {
		t.Errorf("week 3: expected {days:1 minutes:12}, got %+v", got)
	}
	if _, ok := pos.History[2]; ok {
		t.Error("week 2 had no sessions, should be absent")
	}
}

func TestResolveWeek_SameDayDeduplication(t *testing.T) {
	d := date(2024, 1, 1)
	sessions := []SessionRecord{
		{Date: d, Minutes: 10},
		{Date: d, Minutes: 15},
	}

	pos := ResolveWeek(sessions, d, 8)
	got := pos.History[1]
	if got.Days != 1 {
		t.Errorf("two sessions on one date: expected 1 distinct day, got %d", got.Days)
	}
	if got.Minutes != 25 {
		t.Errorf("expected minutes summed to 25, got %d", got.Minutes)
	}
}

func TestResolveWeek_TimestampsTruncateToDates(t *testing.T) {
	// sessions recorded at different times of one calendar day
	sessions := []SessionRecord{
		{Date: time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC), Minutes: 10},
		{Date: time.Date(2024, 1, 1, 22, 15, 0, 0, time.UTC), Minutes: 5},
	}

	pos := ResolveWeek(sessions, time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), 8)
	if got := pos.History[1]; got.Days != 1 || got.Minutes != 15 {
		t.Errorf("expected {days:1 minutes:15}, got %+v", got)
	}
}
