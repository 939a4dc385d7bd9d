package repository

import "gorm.io/gorm"

// Repository aggregates every repository interface.
type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Preference PreferenceRepository
	Stats      StatsRepository
}

// NewRepository wires the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Session:    NewSessionRepo(db),
		Preference: NewPreferenceRepo(db),
		Stats:      NewStatsRepo(db),
	}
}
