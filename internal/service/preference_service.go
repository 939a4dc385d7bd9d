package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/model"
	"kriah-trainer/backend/internal/plan"
	"kriah-trainer/backend/internal/repository"
)

// ── preference business errors ──

var (
	ErrInvalidPlanWeeks = errors.New("plan length must be 8, 12 or 16 weeks")
	// ErrContradictoryOverride guards the one misconfiguration the plan
	// engine will not catch: a siddur floor above the daily total would
	// silently consume the whole budget.
	ErrContradictoryOverride = errors.New("siddur minutes cannot exceed daily minutes")
)

// PreferenceService is the plan-preference business interface.
type PreferenceService interface {
	Get(ctx context.Context, userID string) (*dto.PreferenceResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error)
	// GetForUser and UpdateForUser act on another user's preferences.
	// Non-admin actors may only touch their own.
	GetForUser(ctx context.Context, actorID, actorRole, targetID string) (*dto.PreferenceResponse, error)
	UpdateForUser(ctx context.Context, actorID, actorRole, targetID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error)
}

type preferenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPreferenceService creates a PreferenceService.
func NewPreferenceService(repo *repository.Repository, logger *zap.Logger) PreferenceService {
	return &preferenceService{repo: repo, logger: logger}
}

func (s *preferenceService) Get(ctx context.Context, userID string) (*dto.PreferenceResponse, error) {
	pref, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toPreferenceResponse(pref), nil
}

func (s *preferenceService) Update(ctx context.Context, userID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	pref, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PlanWeeks != nil {
		if !plan.ValidPlanLength(*req.PlanWeeks) {
			return nil, ErrInvalidPlanWeeks
		}
		pref.PlanWeeks = *req.PlanWeeks
	}
	if req.DailyMinutes != nil {
		pref.DailyMinutes = *req.DailyMinutes
	}
	if req.SiddurMinutes != nil {
		pref.SiddurMinutes = *req.SiddurMinutes
	}
	if req.AutoplaySeconds != nil {
		pref.AutoplaySeconds = *req.AutoplaySeconds
	}

	if pref.DailyMinutes > 0 && pref.SiddurMinutes > pref.DailyMinutes {
		return nil, ErrContradictoryOverride
	}

	if err := s.repo.Preference.Upsert(ctx, pref); err != nil {
		s.logger.Error("saving preferences failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return toPreferenceResponse(pref), nil
}

func (s *preferenceService) GetForUser(ctx context.Context, actorID, actorRole, targetID string) (*dto.PreferenceResponse, error) {
	if actorID != targetID && actorRole != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.Get(ctx, targetID)
}

func (s *preferenceService) UpdateForUser(ctx context.Context, actorID, actorRole, targetID string, req *dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	if actorID != targetID && actorRole != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.Update(ctx, targetID, req)
}

// loadOrDefault returns the stored preference row, or the defaults for a
// user who has never saved one.
func (s *preferenceService) loadOrDefault(ctx context.Context, userID string) (*model.UserPreference, error) {
	pref, err := s.repo.Preference.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.UserPreference{UserID: userID, PlanWeeks: 8}, nil
		}
		s.logger.Error("loading preferences failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return pref, nil
}

func toPreferenceResponse(pref *model.UserPreference) *dto.PreferenceResponse {
	return &dto.PreferenceResponse{
		PlanWeeks:       pref.PlanWeeks,
		DailyMinutes:    pref.DailyMinutes,
		SiddurMinutes:   pref.SiddurMinutes,
		AutoplaySeconds: pref.AutoplaySeconds,
	}
}
