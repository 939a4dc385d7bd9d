package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"kriah-trainer/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("uid-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions map[string]*model.PracticeSession
	nextID   int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*model.PracticeSession)}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.PracticeSession) error {
	if session.SessionID == "" {
		m.nextID++
		session.SessionID = fmt.Sprintf("sess-%d", m.nextID)
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (*model.PracticeSession, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) ListByUser(_ context.Context, userID, mode string) ([]model.PracticeSession, error) {
	var result []model.PracticeSession
	for _, s := range m.sessions {
		if s.UserID != userID {
			continue
		}
		if mode != "" && s.Mode != mode {
			continue
		}
		result = append(result, *s)
	}
	sortNewestFirst(result)
	return result, nil
}

func (m *mockSessionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]model.PracticeSession, error) {
	result, _ := m.ListByUser(ctx, userID, "")
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockSessionRepo) ListByDate(_ context.Context, userID string, date time.Time) ([]model.PracticeSession, error) {
	var result []model.PracticeSession
	for _, s := range m.sessions {
		if s.UserID == userID && sameDate(s.Date, date) {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSessionRepo) Update(_ context.Context, session *model.PracticeSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func sortNewestFirst(sessions []model.PracticeSession) {
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.After(sessions[j].Date)
		}
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
}

// ── Mock PreferenceRepository ──

type mockPreferenceRepo struct {
	prefs map[string]*model.UserPreference
}

func newMockPreferenceRepo() *mockPreferenceRepo {
	return &mockPreferenceRepo{prefs: make(map[string]*model.UserPreference)}
}

func (m *mockPreferenceRepo) GetByUser(_ context.Context, userID string) (*model.UserPreference, error) {
	if p, ok := m.prefs[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPreferenceRepo) Upsert(_ context.Context, pref *model.UserPreference) error {
	m.prefs[pref.UserID] = pref
	return nil
}

// ── Mock StatsRepository ──

type mockStatsRepo struct {
	stats map[string]*model.Stats
}

func newMockStatsRepo() *mockStatsRepo {
	return &mockStatsRepo{stats: make(map[string]*model.Stats)}
}

func (m *mockStatsRepo) GetByUser(_ context.Context, userID string) (*model.Stats, error) {
	if s, ok := m.stats[userID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStatsRepo) Upsert(_ context.Context, stats *model.Stats) error {
	m.stats[stats.UserID] = stats
	return nil
}
