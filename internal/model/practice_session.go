package model

import "time"

// PracticeSession maps to the practice_sessions table.
// Rows are immutable after creation except for administrative minute
// corrections and deletion.
type PracticeSession struct {
	SessionID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	UserID        string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Date          time.Time `gorm:"type:date;not null"                             json:"date"`
	Mode          string    `gorm:"type:varchar(20);not null"                      json:"mode"`
	Minutes       int       `gorm:"not null"                                       json:"minutes"`
	RecordingPath *string   `gorm:"type:varchar(255)"                              json:"recording_path,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (PracticeSession) TableName() string { return "practice_sessions" }
