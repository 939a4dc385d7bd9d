package service

import (
	"time"

	"kriah-trainer/backend/internal/model"
	"kriah-trainer/backend/internal/plan"
)

const dateLayout = "2006-01-02"

// todayLocal derives "today" by shifting UTC by the fixed configured offset
// and truncating to the calendar date. Deliberately not DST-aware; see
// config.PlanConfig.
func todayLocal(offsetHours int) time.Time {
	t := time.Now().UTC().Add(time.Duration(offsetHours) * time.Hour)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// toSessionRecords projects session rows into the plan engine's input.
func toSessionRecords(sessions []model.PracticeSession) []plan.SessionRecord {
	records := make([]plan.SessionRecord, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, plan.SessionRecord{Date: s.Date, Minutes: s.Minutes})
	}
	return records
}

// overridesFrom extracts the plan engine knobs from a preference row.
func overridesFrom(pref *model.UserPreference) plan.Overrides {
	return plan.Overrides{
		DailyMinutes:  pref.DailyMinutes,
		SiddurMinutes: pref.SiddurMinutes,
	}
}
