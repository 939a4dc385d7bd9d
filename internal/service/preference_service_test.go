package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/model"
)

func newTestPreferenceService(t *testing.T) (PreferenceService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	return NewPreferenceService(env.repo, zap.NewNop()), env
}

func intPtr(v int) *int { return &v }

func TestPreferenceService_Get_DefaultsWhenMissing(t *testing.T) {
	svc, _ := newTestPreferenceService(t)

	resp, err := svc.Get(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if resp.PlanWeeks != 8 {
		t.Errorf("default plan is 8 weeks, got %d", resp.PlanWeeks)
	}
	if resp.DailyMinutes != 0 || resp.SiddurMinutes != 0 {
		t.Errorf("overrides default to unset: %+v", resp)
	}
}

func TestPreferenceService_Update_PartialFields(t *testing.T) {
	svc, env := newTestPreferenceService(t)
	ctx := context.Background()

	env.prefs.prefs["uid-1"] = &model.UserPreference{
		UserID: "uid-1", PlanWeeks: 8, DailyMinutes: 30, SiddurMinutes: 10,
	}

	resp, err := svc.Update(ctx, "uid-1", &dto.UpdatePreferenceRequest{PlanWeeks: intPtr(16)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp.PlanWeeks != 16 {
		t.Errorf("plan weeks should update, got %d", resp.PlanWeeks)
	}
	if resp.DailyMinutes != 30 || resp.SiddurMinutes != 10 {
		t.Errorf("untouched fields should survive: %+v", resp)
	}
}

func TestPreferenceService_Update_RejectsBadPlanLength(t *testing.T) {
	svc, _ := newTestPreferenceService(t)

	_, err := svc.Update(context.Background(), "uid-1", &dto.UpdatePreferenceRequest{PlanWeeks: intPtr(9)})
	if !errors.Is(err, ErrInvalidPlanWeeks) {
		t.Errorf("expected ErrInvalidPlanWeeks, got %v", err)
	}
}

func TestPreferenceService_Update_RejectsSiddurAboveDaily(t *testing.T) {
	svc, _ := newTestPreferenceService(t)

	_, err := svc.Update(context.Background(), "uid-1", &dto.UpdatePreferenceRequest{
		DailyMinutes:  intPtr(15),
		SiddurMinutes: intPtr(20),
	})
	if !errors.Is(err, ErrContradictoryOverride) {
		t.Errorf("expected ErrContradictoryOverride, got %v", err)
	}
}

func TestPreferenceService_Update_SiddurAloneAllowed(t *testing.T) {
	svc, _ := newTestPreferenceService(t)

	// daily unset (0) means no ceiling to contradict
	resp, err := svc.Update(context.Background(), "uid-1", &dto.UpdatePreferenceRequest{
		SiddurMinutes: intPtr(45),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp.SiddurMinutes != 45 {
		t.Errorf("expected siddur 45, got %d", resp.SiddurMinutes)
	}
}

func TestPreferenceService_Update_Persists(t *testing.T) {
	svc, env := newTestPreferenceService(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, "uid-1", &dto.UpdatePreferenceRequest{
		DailyMinutes:    intPtr(25),
		AutoplaySeconds: intPtr(3),
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored := env.prefs.prefs["uid-1"]
	if stored == nil {
		t.Fatal("preference row should have been upserted")
	}
	if stored.DailyMinutes != 25 || stored.AutoplaySeconds != 3 {
		t.Errorf("unexpected stored row: %+v", stored)
	}
}

func TestPreferenceService_ForUser_SelfOrAdmin(t *testing.T) {
	svc, env := newTestPreferenceService(t)
	ctx := context.Background()

	if _, err := svc.GetForUser(ctx, "uid-2", model.RoleMember, "uid-1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("member reading another user should be forbidden, got %v", err)
	}
	if _, err := svc.UpdateForUser(ctx, "uid-2", model.RoleMember, "uid-1", &dto.UpdatePreferenceRequest{
		PlanWeeks: intPtr(12),
	}); !errors.Is(err, ErrForbidden) {
		t.Errorf("member editing another user should be forbidden, got %v", err)
	}

	own, err := svc.GetForUser(ctx, "uid-1", model.RoleMember, "uid-1")
	if err != nil {
		t.Fatalf("GetForUser (self) failed: %v", err)
	}
	if own.PlanWeeks != 8 {
		t.Errorf("default plan is 8 weeks, got %d", own.PlanWeeks)
	}

	if _, err := svc.UpdateForUser(ctx, "admin-1", model.RoleAdmin, "uid-1", &dto.UpdatePreferenceRequest{
		PlanWeeks: intPtr(16),
	}); err != nil {
		t.Fatalf("UpdateForUser (admin) failed: %v", err)
	}
	stored := env.prefs.prefs["uid-1"]
	if stored == nil || stored.PlanWeeks != 16 {
		t.Errorf("admin edit should persist against the target user: %+v", stored)
	}

	asAdmin, err := svc.GetForUser(ctx, "admin-1", model.RoleAdmin, "uid-1")
	if err != nil {
		t.Fatalf("GetForUser (admin) failed: %v", err)
	}
	if asAdmin.PlanWeeks != 16 {
		t.Errorf("admin should read the target's row, got %d weeks", asAdmin.PlanWeeks)
	}
}
