package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kriah-trainer/backend/internal/model"
)

// PreferenceRepository is the user_preferences data access interface.
type PreferenceRepository interface {
	GetByUser(ctx context.Context, userID string) (*model.UserPreference, error)
	Upsert(ctx context.Context, pref *model.UserPreference) error
}

type preferenceRepo struct {
	db *gorm.DB
}

// NewPreferenceRepo creates a PreferenceRepository backed by gorm.
func NewPreferenceRepo(db *gorm.DB) PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) GetByUser(ctx context.Context, userID string) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepo) Upsert(ctx context.Context, pref *model.UserPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"plan_weeks", "daily_minutes", "siddur_minutes", "autoplay_seconds", "updated_at",
			}),
		}).
		Create(pref).Error
}
