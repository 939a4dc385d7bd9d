package model

import "time"

// Stats maps to the stats table: per-user aggregate counters maintained
// transactionally alongside session writes, and reconciled nightly against
// the raw session rows.
type Stats struct {
	UserID           string     `gorm:"type:uuid;primaryKey"               json:"user_id"`
	CurrentStreak    int        `gorm:"not null;default:0"                 json:"current_streak"`
	LongestStreak    int        `gorm:"not null;default:0"                 json:"longest_streak"`
	TotalMinutes     int        `gorm:"not null;default:0"                 json:"total_minutes"`
	LastPracticeDate *time.Time `gorm:"type:date"                          json:"last_practice_date,omitempty"`
	UpdatedAt        time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the table name.
func (Stats) TableName() string { return "stats" }
