package dto

// CompleteSessionRequest logs a finished practice session.
// Minutes below 1 are clamped up, matching the timer UI sending 0 for
// sub-minute sessions.
type CompleteSessionRequest struct {
	Mode    string `json:"mode" binding:"required"`
	Minutes int    `json:"minutes"`
}

// CorrectSessionRequest is an administrative minutes correction.
type CorrectSessionRequest struct {
	Minutes int `json:"minutes" binding:"required,min=1"`
}

// SessionListRequest filters the session history.
type SessionListRequest struct {
	Mode string `form:"mode"`
}

// SessionResponse is one logged session.
type SessionResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Mode          string `json:"mode"`
	Minutes       int    `json:"minutes"`
	RecordingPath string `json:"recording_path,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// StatsResponse is the per-user aggregate counters.
type StatsResponse struct {
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	TotalMinutes     int    `json:"total_minutes"`
	LastPracticeDate string `json:"last_practice_date,omitempty"` // YYYY-MM-DD
}

// DrillRow is one dashboard progress bar: today's minutes against the
// final (override-adjusted) target for one mode.
type DrillRow struct {
	Mode    string `json:"mode"`
	Color   string `json:"color"`
	Done    int    `json:"done"`
	Target  int    `json:"target"`
	Percent int    `json:"percent"`
}

// DashboardResponse backs the main dashboard view.
type DashboardResponse struct {
	Stats          StatsResponse     `json:"stats"`
	RecentSessions []SessionResponse `json:"recent_sessions"`
	CurrentWeek    int               `json:"current_week"`
	StartDate      string            `json:"start_date,omitempty"` // YYYY-MM-DD
	WeekTitle      string            `json:"week_title"`
	WeekPhase      string            `json:"week_phase"`
	TodayRows      []DrillRow        `json:"today_rows"`
}
