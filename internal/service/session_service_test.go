package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go.uber.org/zap"

	"kriah-trainer/backend/config"
	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/model"
	"kriah-trainer/backend/internal/repository"
)

// ── test helpers ──

type testEnv struct {
	cfg      *config.Config
	repo     *repository.Repository
	users    *mockUserRepo
	sessions *mockSessionRepo
	prefs    *mockPreferenceRepo
	stats    *mockStatsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newMockUserRepo()
	sessions := newMockSessionRepo()
	prefs := newMockPreferenceRepo()
	stats := newMockStatsRepo()
	return &testEnv{
		cfg: &config.Config{
			Plan:    config.PlanConfig{TZOffsetHours: 0},
			Storage: config.StorageConfig{RecordingsDir: t.TempDir(), MaxRecordingBytes: 1 << 20},
		},
		repo: &repository.Repository{
			User:       users,
			Session:    sessions,
			Preference: prefs,
			Stats:      stats,
		},
		users:    users,
		sessions: sessions,
		prefs:    prefs,
		stats:    stats,
	}
}

func newTestSessionService(t *testing.T) (SessionService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	planSvc := NewPlanService(env.cfg, env.repo, zap.NewNop())
	return NewSessionService(env.cfg, env.repo, planSvc, zap.NewNop()), env
}

func today() time.Time {
	return todayLocal(0)
}

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// ── Complete ──

func TestSessionService_Complete_Success(t *testing.T) {
	svc, env := newTestSessionService(t)

	resp, err := svc.Complete(context.Background(), "uid-1", &dto.CompleteSessionRequest{
		Mode: "phrases", Minutes: 12,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Mode != "phrases" || resp.Minutes != 12 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Date != today().Format(dateLayout) {
		t.Errorf("session should be dated today, got %s", resp.Date)
	}

	stats := env.stats.stats["uid-1"]
	if stats == nil {
		t.Fatal("stats row should have been created")
	}
	if stats.TotalMinutes != 12 || stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestSessionService_Complete_ClampsMinutes(t *testing.T) {
	svc, _ := newTestSessionService(t)

	resp, err := svc.Complete(context.Background(), "uid-1", &dto.CompleteSessionRequest{
		Mode: "siddur", Minutes: 0,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Minutes != 1 {
		t.Errorf("sub-minute session should clamp to 1, got %d", resp.Minutes)
	}
}

func TestSessionService_Complete_InvalidMode(t *testing.T) {
	svc, _ := newTestSessionService(t)

	_, err := svc.Complete(context.Background(), "uid-1", &dto.CompleteSessionRequest{
		Mode: "juggling", Minutes: 10,
	})
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

// ── streak rules ──

func TestSessionService_Streak_ExtendsAfterYesterday(t *testing.T) {
	svc, env := newTestSessionService(t)

	yesterday := today().AddDate(0, 0, -1)
	env.stats.stats["uid-1"] = &model.Stats{
		UserID: "uid-1", CurrentStreak: 3, LongestStreak: 5,
		TotalMinutes: 100, LastPracticeDate: &yesterday,
	}

	if _, err := svc.Complete(context.Background(), "uid-1", &dto.CompleteSessionRequest{Mode: "prayer", Minutes: 10}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	stats := env.stats.stats["uid-1"]
	if stats.CurrentStreak != 4 {
		t.Errorf("streak should extend to 4, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 5 {
		t.Errorf("longest streak should stay 5, got %d", stats.LongestStreak)
	}
	if stats.TotalMinutes != 110 {
		t.Errorf("total should be 110, got %d", stats.TotalMinutes)
	}
}

func TestSessionService_Streak_SecondSessionTodayUnchanged(t *testing.T) {
	svc, env := newTestSessionService(t)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := svc.Complete(ctx, "uid-1", &dto.CompleteSessionRequest{Mode: "letters", Minutes: 5}); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
	}

	stats := env.stats.stats["uid-1"]
	if stats.CurrentStreak != 1 {
		t.Errorf("two sessions in one day still count one streak day, got %d", stats.CurrentStreak)
	}
	if stats.TotalMinutes != 10 {
		t.Errorf("total should be 10, got %d", stats.TotalMinutes)
	}
}

func TestSessionService_Streak_ResetsAfterGap(t *testing.T) {
	svc, env := newTestSessionService(t)

	lastWeek := today().AddDate(0, 0, -5)
	env.stats.stats["uid-1"] = &model.Stats{
		UserID: "uid-1", CurrentStreak: 7, LongestStreak: 7,
		TotalMinutes: 200, LastPracticeDate: &lastWeek,
	}

	if _, err := svc.Complete(context.Background(), "uid-1", &dto.CompleteSessionRequest{Mode: "syllables", Minutes: 8}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	stats := env.stats.stats["uid-1"]
	if stats.CurrentStreak != 1 {
		t.Errorf("gap should reset streak to 1, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 7 {
		t.Errorf("longest streak should be preserved, got %d", stats.LongestStreak)
	}
}

// ── Delete ──

func TestSessionService_Delete_OwnerOnly(t *testing.T) {
	svc, env := newTestSessionService(t)

	sess := &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "phrases", Minutes: 10}
	env.sessions.Create(context.Background(), sess)

	err := svc.Delete(context.Background(), "uid-2", model.RoleMember, sess.SessionID)
	if !errors.Is(err, ErrNotSessionOwner) {
		t.Fatalf("expected ErrNotSessionOwner, got %v", err)
	}

	if err := svc.Delete(context.Background(), "uid-1", model.RoleMember, sess.SessionID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(env.sessions.sessions) != 0 {
		t.Error("session should be gone")
	}
}

func TestSessionService_Delete_AdminCanDeleteAny(t *testing.T) {
	svc, env := newTestSessionService(t)

	sess := &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "phrases", Minutes: 10}
	env.sessions.Create(context.Background(), sess)
	env.stats.stats["uid-1"] = &model.Stats{UserID: "uid-1", TotalMinutes: 10}

	if err := svc.Delete(context.Background(), "admin-1", model.RoleAdmin, sess.SessionID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if env.stats.stats["uid-1"].TotalMinutes != 0 {
		t.Errorf("total should drop to 0, got %d", env.stats.stats["uid-1"].TotalMinutes)
	}
}

func TestSessionService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestSessionService(t)

	err := svc.Delete(context.Background(), "uid-1", model.RoleMember, "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_DeleteByMode(t *testing.T) {
	svc, env := newTestSessionService(t)
	ctx := context.Background()

	d := today()
	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: d, Mode: "phrases", Minutes: 10})
	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: d.AddDate(0, 0, -1), Mode: "phrases", Minutes: 10})
	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: d, Mode: "siddur", Minutes: 15})

	deleted, err := svc.DeleteByMode(ctx, "uid-1", "phrases")
	if err != nil {
		t.Fatalf("DeleteByMode failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deletions, got %d", deleted)
	}
	if len(env.sessions.sessions) != 1 {
		t.Errorf("siddur session should survive, %d sessions left", len(env.sessions.sessions))
	}
	// stats are rebuilt from the surviving rows
	if env.stats.stats["uid-1"].TotalMinutes != 15 {
		t.Errorf("total should be 15 after rebuild, got %d", env.stats.stats["uid-1"].TotalMinutes)
	}

	if _, err := svc.DeleteByMode(ctx, "uid-1", "juggling"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

// ── CorrectMinutes ──

func TestSessionService_CorrectMinutes(t *testing.T) {
	svc, env := newTestSessionService(t)

	sess := &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "siddur", Minutes: 10}
	env.sessions.Create(context.Background(), sess)
	env.stats.stats["uid-1"] = &model.Stats{UserID: "uid-1", TotalMinutes: 10}

	resp, err := svc.CorrectMinutes(context.Background(), sess.SessionID, 25)
	if err != nil {
		t.Fatalf("CorrectMinutes failed: %v", err)
	}
	if resp.Minutes != 25 {
		t.Errorf("expected 25 minutes, got %d", resp.Minutes)
	}
	if env.stats.stats["uid-1"].TotalMinutes != 25 {
		t.Errorf("total should follow the correction, got %d", env.stats.stats["uid-1"].TotalMinutes)
	}
}

// ── Reconcile ──

func TestSessionService_Reconcile_RebuildsCounters(t *testing.T) {
	svc, env := newTestSessionService(t)
	ctx := context.Background()

	d := today()
	// a 3-day run ending two days ago, then a gap, then yesterday+today
	for _, offset := range []int{-6, -5, -4, -1, 0} {
		env.sessions.Create(ctx, &model.PracticeSession{
			UserID: "uid-1", Date: d.AddDate(0, 0, offset), Mode: "phrases", Minutes: 10,
		})
	}
	// drifted counters
	env.stats.stats["uid-1"] = &model.Stats{UserID: "uid-1", TotalMinutes: 999, CurrentStreak: 9}

	if err := svc.Reconcile(ctx, "uid-1"); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	stats := env.stats.stats["uid-1"]
	if stats.TotalMinutes != 50 {
		t.Errorf("total should be 50, got %d", stats.TotalMinutes)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("longest streak should be 3, got %d", stats.LongestStreak)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("current streak should be 2, got %d", stats.CurrentStreak)
	}
	if stats.LastPracticeDate == nil || !sameDate(*stats.LastPracticeDate, d) {
		t.Errorf("last practice date should be today, got %v", stats.LastPracticeDate)
	}
}

func TestSessionService_Reconcile_DuplicateDatesCountOnce(t *testing.T) {
	svc, env := newTestSessionService(t)
	ctx := context.Background()

	d := today()
	for i := 0; i < 3; i++ {
		env.sessions.Create(ctx, &model.PracticeSession{
			UserID: "uid-1", Date: d, Mode: "letters", Minutes: 5,
		})
	}

	if err := svc.Reconcile(ctx, "uid-1"); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	stats := env.stats.stats["uid-1"]
	if stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Errorf("one practice day is one streak day: %+v", stats)
	}
	if stats.TotalMinutes != 15 {
		t.Errorf("total should be 15, got %d", stats.TotalMinutes)
	}
}

func TestSessionService_ReconcileAll(t *testing.T) {
	svc, env := newTestSessionService(t)
	ctx := context.Background()

	env.users.Create(ctx, &model.User{UserID: "uid-1", Name: "A", Email: "a@test.com"})
	env.users.Create(ctx, &model.User{UserID: "uid-2", Name: "B", Email: "b@test.com"})
	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "prayer", Minutes: 20})

	if err := svc.ReconcileAll(ctx); err != nil {
		t.Fatalf("ReconcileAll failed: %v", err)
	}
	if env.stats.stats["uid-1"].TotalMinutes != 20 {
		t.Errorf("uid-1 total should be 20, got %d", env.stats.stats["uid-1"].TotalMinutes)
	}
	if env.stats.stats["uid-2"].TotalMinutes != 0 {
		t.Errorf("uid-2 total should be 0, got %d", env.stats.stats["uid-2"].TotalMinutes)
	}
}

// ── Dashboard ──

func TestSessionService_Dashboard(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	if _, err := svc.Complete(ctx, "uid-1", &dto.CompleteSessionRequest{Mode: "consonants", Minutes: 10}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	dash, err := svc.Dashboard(ctx, "uid-1")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if dash.CurrentWeek != 1 {
		t.Errorf("first session lands in week 1, got %d", dash.CurrentWeek)
	}
	if dash.WeekTitle == "" || dash.WeekPhase == "" {
		t.Error("week title and phase should be populated")
	}
	if len(dash.RecentSessions) != 1 {
		t.Errorf("expected 1 recent session, got %d", len(dash.RecentSessions))
	}
	if dash.Stats.TotalMinutes != 10 {
		t.Errorf("stats total should be 10, got %d", dash.Stats.TotalMinutes)
	}

	var found bool
	for _, row := range dash.TodayRows {
		if row.Mode == "consonants" {
			found = true
			if row.Done != 10 {
				t.Errorf("consonants done should be 10, got %d", row.Done)
			}
			if row.Color == "" {
				t.Error("row should carry a color")
			}
			if row.Target > 0 && row.Percent != progressPercent(10, row.Target) {
				t.Errorf("percent mismatch: %+v", row)
			}
		}
		if row.Percent > 100 {
			t.Errorf("percent is capped at 100: %+v", row)
		}
	}
	if !found {
		t.Error("today rows should include the practiced mode")
	}
}

// ── List ──

func TestSessionService_List_FiltersByMode(t *testing.T) {
	svc, env := newTestSessionService(t)
	ctx := context.Background()

	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "phrases", Minutes: 10})
	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "siddur", Minutes: 15})
	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-2", Date: today(), Mode: "phrases", Minutes: 5})

	all, err := svc.List(ctx, "uid-1", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(all))
	}

	phrases, err := svc.List(ctx, "uid-1", "phrases")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(phrases) != 1 || phrases[0].Mode != "phrases" {
		t.Errorf("mode filter failed: %+v", phrases)
	}

	if _, err := svc.List(ctx, "uid-1", "juggling"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

func TestSessionService_ListForUser_SelfOrAdmin(t *testing.T) {
	svc, env := newTestSessionService(t)
	ctx := context.Background()

	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "phrases", Minutes: 10})
	env.sessions.Create(ctx, &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "siddur", Minutes: 15})

	own, err := svc.ListForUser(ctx, "uid-1", model.RoleMember, "uid-1", "")
	if err != nil {
		t.Fatalf("ListForUser (self) failed: %v", err)
	}
	if len(own) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(own))
	}

	if _, err := svc.ListForUser(ctx, "uid-2", model.RoleMember, "uid-1", ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("member reading another user should be forbidden, got %v", err)
	}

	asAdmin, err := svc.ListForUser(ctx, "admin-1", model.RoleAdmin, "uid-1", "siddur")
	if err != nil {
		t.Fatalf("ListForUser (admin) failed: %v", err)
	}
	if len(asAdmin) != 1 || asAdmin[0].Mode != "siddur" {
		t.Errorf("admin should see the target's filtered history: %+v", asAdmin)
	}
}

// ── SaveRecording ──

func TestSessionService_SaveRecording(t *testing.T) {
	svc, env := newTestSessionService(t)
	ctx := context.Background()

	sess := &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "siddur", Minutes: 10}
	env.sessions.Create(ctx, sess)

	payload := []byte("webm-bytes")
	resp, err := svc.SaveRecording(ctx, "uid-1", sess.SessionID, bytesReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("SaveRecording failed: %v", err)
	}
	if resp.RecordingPath == "" {
		t.Fatal("recording path should be set")
	}

	if _, err := svc.SaveRecording(ctx, "uid-2", sess.SessionID, bytesReader(payload), int64(len(payload))); !errors.Is(err, ErrNotSessionOwner) {
		t.Errorf("expected ErrNotSessionOwner, got %v", err)
	}
}

func TestSessionService_SaveRecording_TooBig(t *testing.T) {
	svc, env := newTestSessionService(t)
	env.cfg.Storage.MaxRecordingBytes = 4

	sess := &model.PracticeSession{UserID: "uid-1", Date: today(), Mode: "siddur", Minutes: 10}
	env.sessions.Create(context.Background(), sess)

	payload := []byte("too large")
	_, err := svc.SaveRecording(context.Background(), "uid-1", sess.SessionID, bytesReader(payload), int64(len(payload)))
	if !errors.Is(err, ErrRecordingTooBig) {
		t.Errorf("expected ErrRecordingTooBig, got %v", err)
	}
}
