package service

import (
	"go.uber.org/zap"

	"kriah-trainer/backend/config"
	"kriah-trainer/backend/internal/repository"
	"kriah-trainer/backend/pkg/jwt"
	"kriah-trainer/backend/pkg/redis"
)

// Service aggregates every service interface.
type Service struct {
	Auth       AuthService
	User       UserService
	Preference PreferenceService
	Plan       PlanService
	Session    SessionService
	Export     ExportService
}

// NewService wires the service aggregate.
// rdb may be nil; token revocation then degrades to TTL-only expiry.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	planSvc := NewPlanService(cfg, repo, logger)
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		Preference: NewPreferenceService(repo, logger),
		Plan:       planSvc,
		Session:    NewSessionService(cfg, repo, planSvc, logger),
		Export:     NewExportService(cfg, repo, planSvc, logger),
	}
}
