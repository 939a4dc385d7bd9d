package dto

// PreferenceResponse is the user's plan preference record.
type PreferenceResponse struct {
	PlanWeeks       int `json:"plan_weeks"`
	DailyMinutes    int `json:"daily_minutes"`
	SiddurMinutes   int `json:"siddur_minutes"`
	AutoplaySeconds int `json:"autoplay_seconds"`
}

// UpdatePreferenceRequest edits preferences; nil fields are left unchanged.
type UpdatePreferenceRequest struct {
	PlanWeeks       *int `json:"plan_weeks" binding:"omitempty,oneof=8 12 16"`
	DailyMinutes    *int `json:"daily_minutes" binding:"omitempty,min=0"`
	SiddurMinutes   *int `json:"siddur_minutes" binding:"omitempty,min=0"`
	AutoplaySeconds *int `json:"autoplay_seconds" binding:"omitempty,min=0"`
}
