package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

type MockIntakeRepo struct {
	mock.Mock
}

func (m *MockIntakeRepo) Upsert(ctx context.Context, day *domain.IntakeDay) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *MockIntakeRepo) GetDay(ctx context.Context, userID string, day domain.DateKey) (*domain.IntakeDay, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepo) ListByUser(ctx context.Context, userID string) ([]*domain.IntakeDay, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepo) ListRange(ctx context.Context, userID string, from, to domain.DateKey) ([]*domain.IntakeDay, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepo) GetChanges(ctx context.Context, userID string, since time.Time) ([]*domain.IntakeDay, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepo) Upsert(ctx context.Context, settings *domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepo) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Save(ctx context.Context, userID string, snap *domain.Snapshot) error {
	args := m.Called(ctx, userID, snap)
	return args.Error(0)
}

func (m *MockSnapshotStore) Load(ctx context.Context, userID string) (*domain.Snapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotStore) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// spySaver and spyRefresher record worker triggers without timers or
// goroutines.
type spySaver struct {
	mu        sync.Mutex
	scheduled []string
	immediate []string
}

func (s *spySaver) Schedule(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, userID)
}

func (s *spySaver) SaveNow(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.immediate = append(s.immediate, userID)
}

type spyRefresher struct {
	mu       sync.Mutex
	enqueued []string
}

func (r *spyRefresher) Enqueue(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enqueued = append(r.enqueued, userID)
}

// fixedClock pins "today" for deterministic window math.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Today() domain.DateKey {
	return domain.NewDateKey(c.now)
}
