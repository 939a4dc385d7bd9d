package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kriah-trainer/backend/config"
	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/model"
	"kriah-trainer/backend/internal/plan"
	"kriah-trainer/backend/internal/reference"
	"kriah-trainer/backend/internal/repository"
)

// Session service errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidMode     = errors.New("unknown practice mode")
	ErrNotSessionOwner = errors.New("session belongs to another user")
	ErrRecordingTooBig = errors.New("recording exceeds the size limit")
)

const recentSessionCount = 10

// SessionService covers session logging, the dashboard, recordings and the
// aggregate stats counters.
type SessionService interface {
	// Complete logs a finished practice session dated today and updates the
	// user's streak and total counters.
	Complete(ctx context.Context, userID string, req *dto.CompleteSessionRequest) (*dto.SessionResponse, error)
	List(ctx context.Context, userID, mode string) ([]dto.SessionResponse, error)
	// ListForUser reads another user's session history. Non-admin actors may
	// only read their own.
	ListForUser(ctx context.Context, actorID, actorRole, targetID, mode string) ([]dto.SessionResponse, error)
	// Delete removes a session. Non-admin actors may only delete their own.
	Delete(ctx context.Context, actorID, actorRole, sessionID string) error
	// DeleteByMode removes every session of one mode for a user and returns
	// how many were removed.
	DeleteByMode(ctx context.Context, userID, mode string) (int, error)
	// SaveRecording stores an uploaded audio file against a session.
	SaveRecording(ctx context.Context, userID, sessionID string, r io.Reader, size int64) (*dto.SessionResponse, error)
	Stats(ctx context.Context, userID string) (*dto.StatsResponse, error)
	Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
	// CorrectMinutes is an administrative fix-up of a logged session.
	CorrectMinutes(ctx context.Context, sessionID string, minutes int) (*dto.SessionResponse, error)
	// Reconcile recomputes a user's stats row from the raw session rows.
	Reconcile(ctx context.Context, userID string) error
	// ReconcileAll runs Reconcile for every user.
	ReconcileAll(ctx context.Context) error
}

type sessionService struct {
	cfg     *config.Config
	repo    *repository.Repository
	planSvc PlanService
	logger  *zap.Logger
}

// NewSessionService creates a SessionService.
func NewSessionService(cfg *config.Config, repo *repository.Repository, planSvc PlanService, logger *zap.Logger) SessionService {
	return &sessionService{cfg: cfg, repo: repo, planSvc: planSvc, logger: logger}
}

func (s *sessionService) Complete(ctx context.Context, userID string, req *dto.CompleteSessionRequest) (*dto.SessionResponse, error) {
	if !plan.ValidMode(req.Mode) {
		return nil, ErrInvalidMode
	}

	minutes := req.Minutes
	if minutes < 1 {
		minutes = 1
	}

	today := todayLocal(s.cfg.Plan.TZOffsetHours)
	session := &model.PracticeSession{
		UserID:  userID,
		Date:    today,
		Mode:    req.Mode,
		Minutes: minutes,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("creating session failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	if err := s.bumpStats(ctx, userID, minutes, today); err != nil {
		// session row is already committed; counters heal on the next
		// nightly reconciliation
		s.logger.Warn("stats update failed after session write",
			zap.String("user_id", userID), zap.Error(err))
	}

	resp := toSessionResponse(session)
	return &resp, nil
}

// bumpStats applies the streak rules for a session logged today.
func (s *sessionService) bumpStats(ctx context.Context, userID string, minutes int, today time.Time) error {
	stats, err := s.repo.Stats.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		stats = &model.Stats{UserID: userID}
	}

	stats.TotalMinutes += minutes

	switch {
	case stats.LastPracticeDate == nil:
		stats.CurrentStreak = 1
	case sameDate(*stats.LastPracticeDate, today):
		// second session today; streak unchanged
	case sameDate(*stats.LastPracticeDate, today.AddDate(0, 0, -1)):
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}

	last := today
	stats.LastPracticeDate = &last
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	return s.repo.Stats.Upsert(ctx, stats)
}

func (s *sessionService) List(ctx context.Context, userID, mode string) ([]dto.SessionResponse, error) {
	if mode != "" && !plan.ValidMode(mode) {
		return nil, ErrInvalidMode
	}
	sessions, err := s.repo.Session.ListByUser(ctx, userID, mode)
	if err != nil {
		return nil, err
	}
	return toSessionResponses(sessions), nil
}

func (s *sessionService) ListForUser(ctx context.Context, actorID, actorRole, targetID, mode string) ([]dto.SessionResponse, error) {
	if actorID != targetID && actorRole != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.List(ctx, targetID, mode)
}

func (s *sessionService) Delete(ctx context.Context, actorID, actorRole, sessionID string) error {
	session, err := s.repo.Session.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	if session.UserID != actorID && actorRole != model.RoleAdmin {
		return ErrNotSessionOwner
	}

	if err := s.repo.Session.Delete(ctx, sessionID); err != nil {
		return err
	}

	if session.RecordingPath != nil {
		if err := os.Remove(*session.RecordingPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("removing recording file failed",
				zap.String("path", *session.RecordingPath), zap.Error(err))
		}
	}

	// keep the counters in step; streaks are left to the nightly job
	if stats, err := s.repo.Stats.GetByUser(ctx, session.UserID); err == nil {
		stats.TotalMinutes -= session.Minutes
		if stats.TotalMinutes < 0 {
			stats.TotalMinutes = 0
		}
		if err := s.repo.Stats.Upsert(ctx, stats); err != nil {
			s.logger.Warn("stats update failed after session delete",
				zap.String("user_id", session.UserID), zap.Error(err))
		}
	}
	return nil
}

func (s *sessionService) DeleteByMode(ctx context.Context, userID, mode string) (int, error) {
	if !plan.ValidMode(mode) {
		return 0, ErrInvalidMode
	}

	sessions, err := s.repo.Session.ListByUser(ctx, userID, mode)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for i := range sessions {
		sess := &sessions[i]
		if err := s.repo.Session.Delete(ctx, sess.SessionID); err != nil {
			s.logger.Error("deleting session failed",
				zap.String("session_id", sess.SessionID), zap.Error(err))
			continue
		}
		deleted++
		if sess.RecordingPath != nil {
			if err := os.Remove(*sess.RecordingPath); err != nil && !os.IsNotExist(err) {
				s.logger.Warn("removing recording file failed",
					zap.String("path", *sess.RecordingPath), zap.Error(err))
			}
		}
	}

	if deleted > 0 {
		// bulk removal shifts both totals and streaks; rebuild from scratch
		if err := s.Reconcile(ctx, userID); err != nil {
			s.logger.Warn("stats reconciliation failed after bulk delete",
				zap.String("user_id", userID), zap.Error(err))
		}
	}
	return deleted, nil
}

func (s *sessionService) SaveRecording(ctx context.Context, userID, sessionID string, r io.Reader, size int64) (*dto.SessionResponse, error) {
	if s.cfg.Storage.MaxRecordingBytes > 0 && size > s.cfg.Storage.MaxRecordingBytes {
		return nil, ErrRecordingTooBig
	}

	session, err := s.repo.Session.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}

	dir := s.cfg.Storage.RecordingsDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating recordings dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.webm", uuid.NewString()))

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating recording file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing recording file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("closing recording file: %w", err)
	}

	old := session.RecordingPath
	session.RecordingPath = &path
	if err := s.repo.Session.Update(ctx, session); err != nil {
		os.Remove(path)
		return nil, err
	}
	if old != nil && *old != path {
		if err := os.Remove(*old); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("removing replaced recording failed",
				zap.String("path", *old), zap.Error(err))
		}
	}

	resp := toSessionResponse(session)
	return &resp, nil
}

func (s *sessionService) Stats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toStatsResponse(stats)
	return &resp, nil
}

func (s *sessionService) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Session.ListRecent(ctx, userID, recentSessionCount)
	if err != nil {
		return nil, err
	}

	targets, pos, err := s.planSvc.Targets(ctx, userID)
	if err != nil {
		return nil, err
	}

	pref, err := s.repo.Preference.GetByUser(ctx, userID)
	planWeeks := 8
	if err == nil {
		planWeeks = pref.PlanWeeks
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p, _ := plan.PlanByLength(planWeeks)
	week := p.WeekAt(pos.Week)

	today := todayLocal(s.cfg.Plan.TZOffsetHours)
	todaySessions, err := s.repo.Session.ListByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	doneByMode := make(map[plan.Mode]int)
	for _, sess := range todaySessions {
		doneByMode[plan.Mode(sess.Mode)] += sess.Minutes
	}

	rows := make([]dto.DrillRow, 0, len(plan.AllModes()))
	for _, mode := range plan.AllModes() {
		target, ok := targets[mode]
		if !ok {
			continue
		}
		done := doneByMode[mode]
		rows = append(rows, dto.DrillRow{
			Mode:    string(mode),
			Color:   reference.ModeColors[string(mode)],
			Done:    done,
			Target:  target,
			Percent: progressPercent(done, target),
		})
	}

	resp := &dto.DashboardResponse{
		Stats:          toStatsResponse(stats),
		RecentSessions: toSessionResponses(recent),
		CurrentWeek:    pos.Week,
		WeekTitle:      week.Title,
		WeekPhase:      week.Phase,
		TodayRows:      rows,
	}
	if pos.StartDate != nil {
		resp.StartDate = pos.StartDate.Format(dateLayout)
	}
	return resp, nil
}

func (s *sessionService) CorrectMinutes(ctx context.Context, sessionID string, minutes int) (*dto.SessionResponse, error) {
	session, err := s.repo.Session.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	delta := minutes - session.Minutes
	session.Minutes = minutes
	if err := s.repo.Session.Update(ctx, session); err != nil {
		return nil, err
	}

	if stats, err := s.repo.Stats.GetByUser(ctx, session.UserID); err == nil {
		stats.TotalMinutes += delta
		if stats.TotalMinutes < 0 {
			stats.TotalMinutes = 0
		}
		if err := s.repo.Stats.Upsert(ctx, stats); err != nil {
			s.logger.Warn("stats update failed after minutes correction",
				zap.String("user_id", session.UserID), zap.Error(err))
		}
	}

	resp := toSessionResponse(session)
	return &resp, nil
}

func (s *sessionService) Reconcile(ctx context.Context, userID string) error {
	sessions, err := s.repo.Session.ListByUser(ctx, userID, "")
	if err != nil {
		return err
	}

	stats := &model.Stats{UserID: userID}
	total := 0
	seen := make(map[time.Time]struct{})
	for _, sess := range sessions {
		total += sess.Minutes
		seen[dateKey(sess.Date)] = struct{}{}
	}
	stats.TotalMinutes = total

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 0, 0
	for i, d := range dates {
		if i > 0 && sameDate(dates[i-1].AddDate(0, 0, 1), d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	stats.LongestStreak = longest
	stats.CurrentStreak = run // run ending at the most recent practice date
	if n := len(dates); n > 0 {
		last := dates[n-1]
		stats.LastPracticeDate = &last
	}

	return s.repo.Stats.Upsert(ctx, stats)
}

func (s *sessionService) ReconcileAll(ctx context.Context) error {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		return err
	}
	var failed int
	for _, u := range users {
		if err := s.Reconcile(ctx, u.UserID); err != nil {
			failed++
			s.logger.Error("reconciling stats failed",
				zap.String("user_id", u.UserID), zap.Error(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("reconciliation failed for %d of %d users", failed, len(users))
	}
	return nil
}

func (s *sessionService) loadStats(ctx context.Context, userID string) (*model.Stats, error) {
	stats, err := s.repo.Stats.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.Stats{UserID: userID}, nil
		}
		return nil, err
	}
	return stats, nil
}

// ──────── helpers ────────

func sameDate(a, b time.Time) bool {
	return dateKey(a).Equal(dateKey(b))
}

func dateKey(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func progressPercent(done, target int) int {
	if target <= 0 {
		if done > 0 {
			return 100
		}
		return 0
	}
	pct := int(math.Round(float64(done) / float64(target) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func toSessionResponse(s *model.PracticeSession) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:        s.SessionID,
		Date:      s.Date.Format(dateLayout),
		Mode:      s.Mode,
		Minutes:   s.Minutes,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
	if s.RecordingPath != nil {
		resp.RecordingPath = *s.RecordingPath
	}
	return resp
}

func toSessionResponses(sessions []model.PracticeSession) []dto.SessionResponse {
	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionResponse(&sessions[i]))
	}
	return out
}

func toStatsResponse(s *model.Stats) dto.StatsResponse {
	resp := dto.StatsResponse{
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		TotalMinutes:  s.TotalMinutes,
	}
	if s.LastPracticeDate != nil {
		resp.LastPracticeDate = s.LastPracticeDate.Format(dateLayout)
	}
	return resp
}
