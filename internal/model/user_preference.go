package model

// UserPreference maps to the user_preferences table, one row per user.
//
// PlanWeeks selects the curriculum (8, 12 or 16 weeks). DailyMinutes and
// SiddurMinutes are overrides consumed by the plan engine; 0 means unset.
// AutoplaySeconds is an unrelated drill-player preference that deliberately
// never reaches the plan engine.
type UserPreference struct {
	UserID          string `gorm:"type:uuid;primaryKey" json:"user_id"`
	PlanWeeks       int    `gorm:"not null;default:8"   json:"plan_weeks"`
	DailyMinutes    int    `gorm:"not null;default:0"   json:"daily_minutes"`
	SiddurMinutes   int    `gorm:"not null;default:0"   json:"siddur_minutes"`
	AutoplaySeconds int    `gorm:"not null;default:0"   json:"autoplay_seconds"`
	BaseModel
}

// TableName sets the table name.
func (UserPreference) TableName() string { return "user_preferences" }
