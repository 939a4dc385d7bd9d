package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kriah-trainer/backend/internal/model"
)

// SessionRepository is the practice_sessions data access interface.
type SessionRepository interface {
	Create(ctx context.Context, session *model.PracticeSession) error
	GetByID(ctx context.Context, id string) (*model.PracticeSession, error)
	// ListByUser returns every session of a user newest first; mode filters
	// when non-empty.
	ListByUser(ctx context.Context, userID, mode string) ([]model.PracticeSession, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]model.PracticeSession, error)
	ListByDate(ctx context.Context, userID string, date time.Time) ([]model.PracticeSession, error)
	Update(ctx context.Context, session *model.PracticeSession) error
	Delete(ctx context.Context, id string) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates a SessionRepository backed by gorm.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.PracticeSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.PracticeSession, error) {
	var session model.PracticeSession
	err := r.db.WithContext(ctx).Where("session_id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID, mode string) ([]model.PracticeSession, error) {
	var sessions []model.PracticeSession
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if mode != "" {
		db = db.Where("mode = ?", mode)
	}
	err := db.Order("date DESC, created_at DESC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]model.PracticeSession, error) {
	var sessions []model.PracticeSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListByDate(ctx context.Context, userID string, date time.Time) ([]model.PracticeSession, error) {
	var sessions []model.PracticeSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Update(ctx context.Context, session *model.PracticeSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", id).Delete(&model.PracticeSession{}).Error
}
