package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kriah-trainer/backend/internal/model"
)

// StatsRepository is the stats data access interface.
type StatsRepository interface {
	GetByUser(ctx context.Context, userID string) (*model.Stats, error)
	Upsert(ctx context.Context, stats *model.Stats) error
}

type statsRepo struct {
	db *gorm.DB
}

// NewStatsRepo creates a StatsRepository backed by gorm.
func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) GetByUser(ctx context.Context, userID string) (*model.Stats, error) {
	var stats model.Stats
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepo) Upsert(ctx context.Context, stats *model.Stats) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_streak", "longest_streak", "total_minutes", "last_practice_date", "updated_at",
			}),
		}).
		Create(stats).Error
}
