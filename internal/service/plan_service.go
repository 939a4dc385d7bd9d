package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kriah-trainer/backend/config"
	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/model"
	"kriah-trainer/backend/internal/plan"
	"kriah-trainer/backend/internal/repository"
)

// PlanService exposes the weekly-plan allocation engine over a user's
// stored sessions and preferences.
type PlanService interface {
	// Position resolves the user's current week, start date and per-week
	// history against their selected plan.
	Position(ctx context.Context, userID string) (*plan.WeekPosition, *model.UserPreference, error)
	// Guide assembles the full training-guide view.
	Guide(ctx context.Context, userID string) (*dto.GuideResponse, error)
	// Targets computes the final override-adjusted per-mode targets for the
	// user's current week.
	Targets(ctx context.Context, userID string) (plan.Targets, *plan.WeekPosition, error)
}

type planService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPlanService creates a PlanService.
func NewPlanService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) PlanService {
	return &planService{cfg: cfg, repo: repo, logger: logger}
}

func (s *planService) Position(ctx context.Context, userID string) (*plan.WeekPosition, *model.UserPreference, error) {
	pref, err := s.preferences(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	sessions, err := s.repo.Session.ListByUser(ctx, userID, "")
	if err != nil {
		s.logger.Error("loading sessions failed", zap.String("user_id", userID), zap.Error(err))
		return nil, nil, err
	}

	today := todayLocal(s.cfg.Plan.TZOffsetHours)
	pos := plan.ResolveWeek(toSessionRecords(sessions), today, pref.PlanWeeks)
	return &pos, pref, nil
}

func (s *planService) Guide(ctx context.Context, userID string) (*dto.GuideResponse, error) {
	pos, pref, err := s.Position(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := plan.PlanByLength(pref.PlanWeeks)
	if !ok {
		// unreachable while the preference layer validates plan_weeks
		return nil, ErrInvalidPlanWeeks
	}

	weeks := make([]dto.WeekGuide, 0, p.Length())
	for _, w := range p.Weeks {
		guide := dto.WeekGuide{WeekDefinition: w}
		if stats, ok := pos.History[w.Week]; ok {
			history := stats
			guide.History = &history
		}
		weeks = append(weeks, guide)
	}

	resp := &dto.GuideResponse{
		PlanWeeks:   pref.PlanWeeks,
		CurrentWeek: pos.Week,
		Weeks:       weeks,
	}
	if pos.StartDate != nil {
		resp.StartDate = pos.StartDate.Format(dateLayout)
	}
	return resp, nil
}

func (s *planService) Targets(ctx context.Context, userID string) (plan.Targets, *plan.WeekPosition, error) {
	pos, pref, err := s.Position(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	p, ok := plan.PlanByLength(pref.PlanWeeks)
	if !ok {
		return nil, nil, ErrInvalidPlanWeeks
	}

	week := p.WeekAt(pos.Week)
	return plan.UserTargets(week, overridesFrom(pref)), pos, nil
}

func (s *planService) preferences(ctx context.Context, userID string) (*model.UserPreference, error) {
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
