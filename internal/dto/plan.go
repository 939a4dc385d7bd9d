package dto

import "kriah-trainer/backend/internal/plan"

// WeekGuide is one week of the guide view: the curriculum definition plus
// the user's historical aggregate for that week, when any.
type WeekGuide struct {
	plan.WeekDefinition
	History *plan.WeekStats `json:"history,omitempty"`
}

// GuideResponse backs the training-guide view.
type GuideResponse struct {
	PlanWeeks   int         `json:"plan_weeks"`
	CurrentWeek int         `json:"current_week"`
	StartDate   string      `json:"start_date,omitempty"` // YYYY-MM-DD
	Weeks       []WeekGuide `json:"weeks"`
}

// TargetsResponse carries the final per-mode minute targets for the
// user's current week.
type TargetsResponse struct {
	CurrentWeek int            `json:"current_week"`
	Targets     map[string]int `json:"targets"`
}
